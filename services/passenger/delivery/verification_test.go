package delivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passenger/domain"
)

type stubVerificationUC struct {
	result *domain.VerificationResult
	err    error
}

func (s *stubVerificationUC) VerifyCPFUC(_ context.Context, _, _ string) (*domain.VerificationResult, error) {
	return s.result, s.err
}

func verificationApp(uc domain.VerificationUseCase) *fiber.App {
	app := fiber.New()
	NewVerificationHandler(app, uc)
	return app
}

func getExternalData(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestGetExternalDataMissingParams(t *testing.T) {
	app := verificationApp(&stubVerificationUC{})

	status, body := getExternalData(t, app, "/external-data?birthdate=1935-12-04")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing 'cpf' query parameter", body["error"])

	status, body = getExternalData(t, app, "/external-data?cpf=71454597011")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing 'birthdate' query parameter", body["error"])
}

func TestGetExternalDataSuccess(t *testing.T) {
	app := verificationApp(&stubVerificationUC{
		result: &domain.VerificationResult{
			Code:     200,
			Count:    1,
			Nome:     "JOAO DA SILVA",
			Situacao: "REGULAR",
		},
	})

	status, body := getExternalData(t, app, "/external-data?cpf=71454597011&birthdate=1935-12-04")
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 200, body["code"])
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "JOAO DA SILVA", body["nome"])
	assert.Equal(t, "REGULAR", body["situacao"])
}

func TestGetExternalDataTimeout(t *testing.T) {
	app := verificationApp(&stubVerificationUC{err: domain.ErrVerifierTimeout})

	status, body := getExternalData(t, app, "/external-data?cpf=71454597011&birthdate=1935-12-04")
	assert.Equal(t, fiber.StatusGatewayTimeout, status)
	assert.Equal(t, "External API request timed out", body["error"])
}

func TestGetExternalDataUpstreamError(t *testing.T) {
	app := verificationApp(&stubVerificationUC{
		err: &domain.UpstreamError{StatusCode: 503, Body: "maintenance"},
	})

	status, body := getExternalData(t, app, "/external-data?cpf=71454597011&birthdate=1935-12-04")
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, body["error"], "External API error:")
	assert.Contains(t, body["error"], "503")
}

func TestGetExternalDataUnexpectedError(t *testing.T) {
	app := verificationApp(&stubVerificationUC{err: assert.AnError})

	status, body := getExternalData(t, app, "/external-data?cpf=71454597011&birthdate=1935-12-04")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "Unexpected error:")
}
