package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/raywall/movie-awards-service/pkg/engine"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run devolve o exit code para que o CI possa falhar o pipeline.
func run(ctx context.Context, args []string, out io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(out, "Comandos esperados: validate")
		return 1
	}

	switch args[0] {
	case "validate":
		validateCmd := flag.NewFlagSet("validate", flag.ContinueOnError)
		validateCmd.SetOutput(out)
		filePtr := validateCmd.String("file", "", "Caminho do arquivo YAML ou S3/DynamoDB URI (vazio: apenas variáveis de ambiente)")
		jsonPtr := validateCmd.Bool("json", os.Getenv("OUTPUT_FORMAT") == "json", "Saída em JSON")
		if err := validateCmd.Parse(args[1:]); err != nil {
			return 1
		}
		return runValidate(ctx, *filePtr, *jsonPtr, out)
	default:
		fmt.Fprintf(out, "Comando desconhecido: %s\n", args[0])
		return 1
	}
}

func runValidate(ctx context.Context, path string, asJSON bool, out io.Writer) int {
	if !asJSON {
		fmt.Fprintf(out, "Analisando configuração: %s ...\n", path)
	}

	// 1. Load (Validação Estrutural)
	cfg, err := engine.NewUniversalLoader().Load(ctx, path)
	if err != nil {
		if asJSON {
			writeJSON(out, engine.ValidationReport{Valid: false, Errors: []string{err.Error()}})
		} else {
			fmt.Fprintf(out, "Erro de Carregamento/Estrutura:\n%v\n", err)
		}
		return 1
	}

	// 2. Analyze (Validação Semântica)
	report := engine.Analyze(cfg)

	if asJSON {
		writeJSON(out, report)
	} else {
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "aviso: %s\n", w)
		}
		if report.Valid {
			fmt.Fprintln(out, "Configuração válida e pronta para deploy!")
		} else {
			fmt.Fprintln(out, "A configuração contém erros lógicos:")
			for _, e := range report.Errors {
				fmt.Fprintf(out, " - %s\n", e)
			}
		}
	}

	if !report.Valid {
		return 1
	}
	return 0
}

func writeJSON(out io.Writer, v interface{}) {
	_ = json.NewEncoder(out).Encode(v)
}
