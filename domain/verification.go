package domain

import (
	"context"
	"fmt"
	"net/http"
)

// VerificationResult carries the fields the verification provider reports for
// a cpf/birthdate pair. Code 200 means the pair checks out; the provider uses
// its own codes for divergent or blocked registrations.
type VerificationResult struct {
	Code     int    `json:"code"`
	Count    int    `json:"count"`
	Nome     string `json:"nome"`
	Situacao string `json:"situacao"`
}

// UpstreamError is returned when the verification provider answers with a
// non-2xx status. The body is kept for the diagnostic text in the response.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

type Verifier interface {
	VerifyCPF(ctx context.Context, cpf, birthdate string) (*VerificationResult, error)
}

type VerificationUseCase interface {
	VerifyCPFUC(ctx context.Context, cpf, birthdate string) (*VerificationResult, error)
}
