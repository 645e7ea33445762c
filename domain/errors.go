package domain

import "errors"

var (
	// ErrNotFound means no passenger matched the given cpf or id.
	ErrNotFound = errors.New("passageiro not found")

	// ErrDuplicateCPF means an insert hit the unique constraint on cpf.
	ErrDuplicateCPF = errors.New("cpf already registered")

	// ErrVerifierTimeout means the verification provider did not answer
	// within the configured deadline.
	ErrVerifierTimeout = errors.New("external API request timed out")
)
