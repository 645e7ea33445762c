package usecase

import (
	"context"
	"time"

	"passenger/domain"
)

type verificationUC struct {
	verifier domain.Verifier
	TimeOut  time.Duration
}

func NewVerificationUseCase(verifier domain.Verifier, timeOut time.Duration) domain.VerificationUseCase {
	return &verificationUC{
		verifier: verifier,
		TimeOut:  timeOut,
	}
}

func (vUC *verificationUC) VerifyCPFUC(ctx context.Context, cpf, birthdate string) (*domain.VerificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.TimeOut)
	defer cancel()

	result, err := vUC.verifier.VerifyCPF(ctx, cpf, birthdate)
	if err != nil {
		return nil, err
	}
	return result, nil
}
