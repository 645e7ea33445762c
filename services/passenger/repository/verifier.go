package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"passenger/domain"
)

type cpfVerifier struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewCPFVerifier builds the client for the third-party registration lookup.
// The provider expects a POST with token, cpf and birthdate as query
// parameters and answers a single JSON document. One attempt, no retries.
func NewCPFVerifier(endpoint, token string, timeout time.Duration) domain.Verifier {
	return &cpfVerifier{
		endpoint: endpoint,
		token:    token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type verifierResponse struct {
	Code      int             `json:"code"`
	DataCount int             `json:"data_count"`
	Data      []verifierEntry `json:"data"`
}

type verifierEntry struct {
	Nome              string `json:"nome"`
	SituacaoCadastral string `json:"situacao_cadastral"`
}

func (cv *cpfVerifier) VerifyCPF(ctx context.Context, cpf, birthdate string) (*domain.VerificationResult, error) {
	params := url.Values{}
	params.Set("token", cv.token)
	params.Set("cpf", cpf)
	params.Set("birthdate", birthdate)

	requestURL := fmt.Sprintf("%s?%s", cv.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build verification request: %v", err)
	}

	resp, err := cv.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if (errors.As(err, &urlErr) && urlErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrVerifierTimeout
		}
		return nil, fmt.Errorf("could not reach verification API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read verification response: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload verifierResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("could not decode verification response: %v", err)
	}

	result := &domain.VerificationResult{
		Code:  payload.Code,
		Count: payload.DataCount,
	}

	if payload.DataCount > 0 {
		if len(payload.Data) == 0 {
			return nil, fmt.Errorf("verification response reports %d records but carries none", payload.DataCount)
		}
		result.Nome = payload.Data[0].Nome
		result.Situacao = payload.Data[0].SituacaoCadastral
	}

	return result, nil
}
