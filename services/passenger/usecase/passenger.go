package usecase

import (
	"context"
	"time"

	"passenger/domain"
)

type passengerUC struct {
	passengerRepo domain.PassengerRepo
	TimeOut       time.Duration
}

func NewPassengerUseCase(repo domain.PassengerRepo, timeOut time.Duration) domain.PassengerUseCase {
	return &passengerUC{
		passengerRepo: repo,
		TimeOut:       timeOut,
	}
}

func (pUC *passengerUC) CreatePassengerUC(ctx context.Context, passenger *domain.Passenger) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	err := pUC.passengerRepo.CreatePassenger(ctx, passenger)
	if err != nil {
		return err
	}
	return nil
}

func (pUC *passengerUC) GetAllPassengerUC(ctx context.Context) (*[]domain.Passenger, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	passengers, err := pUC.passengerRepo.GetAllPassenger(ctx)
	if err != nil {
		return nil, err
	}
	return passengers, nil
}

func (pUC *passengerUC) GetPassengerByCPFUC(ctx context.Context, cpf string) (*domain.Passenger, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	passenger, err := pUC.passengerRepo.GetPassengerByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	return passenger, nil
}

// UpdatePassengerUC applies the update and hands back the row as stored, so
// the caller answers with what the base actually holds.
func (pUC *passengerUC) UpdatePassengerUC(ctx context.Context, passenger *domain.Passenger) (*domain.Passenger, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	if err := pUC.passengerRepo.UpdatePassenger(ctx, passenger); err != nil {
		return nil, err
	}

	updated, err := pUC.passengerRepo.GetPassengerByID(ctx, passenger.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (pUC *passengerUC) DeletePassengerByCPFUC(ctx context.Context, cpf string) error {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	err := pUC.passengerRepo.DeletePassengerByCPF(ctx, cpf)
	if err != nil {
		return err
	}
	return nil
}

// AddContactUC resolves the passenger first; an unknown id never leaves an
// orphan contact row behind.
func (pUC *passengerUC) AddContactUC(ctx context.Context, passengerID int, contact *domain.Contact) (*domain.Passenger, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	passenger, err := pUC.passengerRepo.GetPassengerByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	if err := pUC.passengerRepo.AddContact(ctx, passenger, contact); err != nil {
		return nil, err
	}
	return passenger, nil
}
