package awards

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Request é a visão neutra de transporte de uma chamada HTTP.
type Request struct {
	PathParameters        map[string]string `json:"pathParameters,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
}

// Response é devolvida pelo Handler e convertida por cada transporte.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// AwardQuery é a consulta já validada.
type AwardQuery struct {
	MovieID   int    `validate:"gt=0"`
	AwardBody string `validate:"required"`
	MinAwards *int
}

var validate = validator.New()

// ParseQuery extrai e valida movieId, awardBody e min da requisição.
// movieId e min seguem a semântica de parseInt: espaços iniciais, sinal
// opcional e a sequência de dígitos inicial ("550abc" vale 550).
// Um min que não contém número é ignorado.
func ParseQuery(req Request) (AwardQuery, error) {
	var q AwardQuery

	if raw, ok := req.PathParameters["movieId"]; ok && raw != "" {
		if n, ok := parseLeadingInt(raw); ok {
			q.MovieID = n
		}
	}
	q.AwardBody = req.PathParameters["awardBody"]

	if raw := req.QueryStringParameters["min"]; raw != "" {
		if n, ok := parseLeadingInt(raw); ok {
			q.MinAwards = &n
		}
	}

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return q, err
		}
		// movieId é verificado antes de awardBody
		for _, field := range []string{"MovieID", "AwardBody"} {
			for _, fe := range verrs {
				if fe.Field() != field {
					continue
				}
				if field == "MovieID" {
					return q, ErrMissingMovieID
				}
				return q, ErrMissingAwardBody
			}
		}
		return q, err
	}

	return q, nil
}

// parseLeadingInt converte o prefixo numérico de s. Aceita o prefixo 0x
// (hexadecimal). Retorna false quando não há dígitos ou o valor não cabe
// em um int.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var n uint64
	digits := 0
	for _, c := range s {
		d, ok := digitValue(c, base)
		if !ok {
			break
		}
		if n > (math.MaxInt64-uint64(d))/uint64(base) {
			return 0, false
		}
		n = n*uint64(base) + uint64(d)
		digits++
	}
	if digits == 0 || n > math.MaxInt {
		return 0, false
	}

	if neg {
		return -int(n), true
	}
	return int(n), true
}

func digitValue(c rune, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}
