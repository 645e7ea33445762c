package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passenger/domain"
)

type mockPassengerRepo struct {
	byID map[int]*domain.Passenger

	updateErr       error
	updatedWith     *domain.Passenger
	addContactCalls int
}

func (m *mockPassengerRepo) CreatePassenger(_ context.Context, _ *domain.Passenger) error {
	return nil
}

func (m *mockPassengerRepo) GetAllPassenger(_ context.Context) (*[]domain.Passenger, error) {
	return &[]domain.Passenger{}, nil
}

func (m *mockPassengerRepo) GetPassengerByCPF(_ context.Context, _ string) (*domain.Passenger, error) {
	return nil, domain.ErrNotFound
}

func (m *mockPassengerRepo) GetPassengerByID(_ context.Context, id int) (*domain.Passenger, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPassengerRepo) UpdatePassenger(_ context.Context, passenger *domain.Passenger) error {
	m.updatedWith = passenger
	return m.updateErr
}

func (m *mockPassengerRepo) DeletePassengerByCPF(_ context.Context, _ string) error {
	return nil
}

func (m *mockPassengerRepo) AddContact(_ context.Context, passenger *domain.Passenger, contact *domain.Contact) error {
	m.addContactCalls++
	contact.ID = 7
	contact.PassageiroID = passenger.ID
	passenger.Contacts = append(passenger.Contacts, *contact)
	return nil
}

func TestUpdatePassengerUCReturnsStoredRow(t *testing.T) {
	stored := &domain.Passenger{
		ID:     1,
		Nome:   "Joao Silva",
		CPF:    "71454597011",
		Flight: "TAM-1234",
	}
	repo := &mockPassengerRepo{byID: map[int]*domain.Passenger{1: stored}}
	uc := NewPassengerUseCase(repo, time.Second)

	updated, err := uc.UpdatePassengerUC(context.Background(), &domain.Passenger{ID: 1, Nome: "Joao Silva", CPF: "71454597011", Flight: "TAM-1234"})
	require.NoError(t, err)
	assert.Equal(t, stored, updated)
	require.NotNil(t, repo.updatedWith)
	assert.Equal(t, 1, repo.updatedWith.ID)
}

func TestUpdatePassengerUCNotFound(t *testing.T) {
	repo := &mockPassengerRepo{byID: map[int]*domain.Passenger{}, updateErr: domain.ErrNotFound}
	uc := NewPassengerUseCase(repo, time.Second)

	_, err := uc.UpdatePassengerUC(context.Background(), &domain.Passenger{ID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddContactUCAppendsToPassenger(t *testing.T) {
	stored := &domain.Passenger{ID: 1, Nome: "Joao", CPF: "27036343826", Contacts: []domain.Contact{}}
	repo := &mockPassengerRepo{byID: map[int]*domain.Passenger{1: stored}}
	uc := NewPassengerUseCase(repo, time.Second)

	contact := domain.Contact{Telefone: "11 99999-0000", Tipo: "celular"}
	passenger, err := uc.AddContactUC(context.Background(), 1, &contact)
	require.NoError(t, err)
	require.Len(t, passenger.Contacts, 1)
	assert.Equal(t, 1, contact.PassageiroID)
	assert.Equal(t, 7, contact.ID)
}

func TestAddContactUCUnknownPassengerLeavesNoRow(t *testing.T) {
	repo := &mockPassengerRepo{byID: map[int]*domain.Passenger{}}
	uc := NewPassengerUseCase(repo, time.Second)

	_, err := uc.AddContactUC(context.Background(), 42, &domain.Contact{Telefone: "11 99999-0000"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, repo.addContactCalls)
}
