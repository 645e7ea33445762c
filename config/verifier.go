package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultVerifierEndpoint = "https://api.infosimples.com/api/v2/consultas/receita-federal/cpf"

// GetVerifierToken returns the pre-shared access token for the verification
// provider. The token is a secret, it only ever comes from the environment.
func GetVerifierToken() (*string, error) {
	token := os.Getenv("VERIFIER_API_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("verifier token invalid, value : %s", token)
	}
	return &token, nil
}

func GetVerifierEndpoint() string {
	env := os.Getenv("VERIFIER_API_URL")
	if env != "" {
		return env
	}
	return defaultVerifierEndpoint
}

func GetVerifierTimeout() time.Duration {
	env := os.Getenv("VERIFIER_TIMEOUT_SECONDS")
	if env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 5 * time.Second
}
