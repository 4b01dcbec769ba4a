package awards

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	ErrMissingMovieID   = errors.New("Missing movie Id")
	ErrMissingAwardBody = errors.New("Missing award body")
	ErrNoMatch          = errors.New("Request failed")
)

// ErrorDetail é o corpo diagnóstico das respostas 500. Não é um contrato
// estável.
type ErrorDetail struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Fault   string `json:"fault"`
}

// statusFor classifica o erro no código HTTP correspondente.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingMovieID), errors.Is(err, ErrMissingAwardBody):
		return 404
	case errors.Is(err, ErrNoMatch):
		return 400
	default:
		return 500
	}
}

// detailFor extrai código e origem de erros da AWS; demais erros são
// identificados pelo tipo da causa mais interna.
func detailFor(err error) ErrorDetail {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return ErrorDetail{
			Name:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Fault:   apiErr.ErrorFault().String(),
		}
	}

	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}

	return ErrorDetail{
		Name:    fmt.Sprintf("%T", root),
		Message: err.Error(),
		Fault:   smithy.FaultUnknown.String(),
	}
}
