package domain

import (
	"context"
	"time"
)

// BirthdateLayout is the wire format every birthdate travels in.
const BirthdateLayout = "2006-01-02T15:04:05"

type Passenger struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string    `gorm:"type:varchar(150);not null" json:"nome" valid:"required~Nome is required"`
	CPF       string    `gorm:"type:varchar(14);not null;unique" json:"cpf" valid:"required~CPF is required"`
	Birthdate time.Time `gorm:"not null" json:"birthdate"`
	Flight    string    `gorm:"type:varchar(20);not null" json:"flight" valid:"required~Flight is required"`
	Contacts  []Contact `gorm:"foreignKey:PassageiroID;constraint:OnDelete:CASCADE" json:"contatos"`
}

type CreatePassengerRequest struct {
	Nome      string `json:"nome" valid:"required~Nome is required"`
	CPF       string `json:"cpf" valid:"required~CPF is required"`
	Birthdate string `json:"birthdate" valid:"required~Birthdate is required"`
	Flight    string `json:"flight" valid:"required~Flight is required"`
}

type UpdatePassengerRequest struct {
	ID        int    `json:"id" valid:"required~ID is required"`
	Nome      string `json:"nome" valid:"required~Nome is required"`
	CPF       string `json:"cpf" valid:"required~CPF is required"`
	Birthdate string `json:"birthdate" valid:"required~Birthdate is required"`
	Flight    string `json:"flight" valid:"required~Flight is required"`
}

// PassengerView is the response-facing projection of a Passenger. Birthdate
// goes back out in the same textual format it came in.
type PassengerView struct {
	ID        int           `json:"id"`
	Nome      string        `json:"nome"`
	CPF       string        `json:"cpf"`
	Birthdate string        `json:"birthdate"`
	Flight    string        `json:"flight"`
	Contatos  []ContactView `json:"contatos"`
}

type PassengerListView struct {
	Passageiros []PassengerView `json:"passageiros"`
}

type PassengerRepo interface {
	CreatePassenger(ctx context.Context, passenger *Passenger) error
	GetAllPassenger(ctx context.Context) (*[]Passenger, error)
	GetPassengerByCPF(ctx context.Context, cpf string) (*Passenger, error)
	GetPassengerByID(ctx context.Context, id int) (*Passenger, error)
	UpdatePassenger(ctx context.Context, passenger *Passenger) error
	DeletePassengerByCPF(ctx context.Context, cpf string) error
	AddContact(ctx context.Context, passenger *Passenger, contact *Contact) error
}

type PassengerUseCase interface {
	CreatePassengerUC(ctx context.Context, passenger *Passenger) error
	GetAllPassengerUC(ctx context.Context) (*[]Passenger, error)
	GetPassengerByCPFUC(ctx context.Context, cpf string) (*Passenger, error)
	UpdatePassengerUC(ctx context.Context, passenger *Passenger) (*Passenger, error)
	DeletePassengerByCPFUC(ctx context.Context, cpf string) error
	AddContactUC(ctx context.Context, passengerID int, contact *Contact) (*Passenger, error)
}
