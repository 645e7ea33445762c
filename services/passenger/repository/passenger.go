package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"passenger/domain"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

type passengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(database *pgxpool.Pool) domain.PassengerRepo {
	return &passengerRepository{
		db: database,
	}
}

func (pr *passengerRepository) CreatePassenger(ctx context.Context, passenger *domain.Passenger) error {
	insertQuery := `
		INSERT INTO passengers (nome, cpf, birthdate, flight)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	var id int
	err := pr.db.QueryRow(ctx, insertQuery, passenger.Nome, passenger.CPF, passenger.Birthdate, passenger.Flight).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateCPF
		}
		return fmt.Errorf("could not insert passenger: %v", err)
	}

	passenger.ID = id
	passenger.Contacts = []domain.Contact{}

	return nil
}

func (pr *passengerRepository) GetAllPassenger(ctx context.Context) (*[]domain.Passenger, error) {
	query := `
		SELECT id, nome, cpf, birthdate, flight
		FROM passengers
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get all passengers: %v", err)
	}

	passengers := []domain.Passenger{}
	for rows.Next() {
		var passenger domain.Passenger

		err := rows.Scan(&passenger.ID, &passenger.Nome, &passenger.CPF, &passenger.Birthdate, &passenger.Flight)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("could not scan passenger: %v", err)
		}

		passengers = append(passengers, passenger)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	for i := range passengers {
		contacts, err := pr.loadContacts(ctx, passengers[i].ID)
		if err != nil {
			return nil, err
		}
		passengers[i].Contacts = contacts
	}

	return &passengers, nil
}

func (pr *passengerRepository) GetPassengerByCPF(ctx context.Context, cpf string) (*domain.Passenger, error) {
	query := `
		SELECT id, nome, cpf, birthdate, flight
		FROM passengers
		WHERE cpf = $1;
	`

	var passenger domain.Passenger
	err := pr.db.QueryRow(ctx, query, cpf).Scan(&passenger.ID, &passenger.Nome, &passenger.CPF, &passenger.Birthdate, &passenger.Flight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not get passenger: %v", err)
	}

	contacts, err := pr.loadContacts(ctx, passenger.ID)
	if err != nil {
		return nil, err
	}
	passenger.Contacts = contacts

	return &passenger, nil
}

func (pr *passengerRepository) GetPassengerByID(ctx context.Context, id int) (*domain.Passenger, error) {
	query := `
		SELECT id, nome, cpf, birthdate, flight
		FROM passengers
		WHERE id = $1;
	`

	var passenger domain.Passenger
	err := pr.db.QueryRow(ctx, query, id).Scan(&passenger.ID, &passenger.Nome, &passenger.CPF, &passenger.Birthdate, &passenger.Flight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("could not get passenger: %v", err)
	}

	contacts, err := pr.loadContacts(ctx, passenger.ID)
	if err != nil {
		return nil, err
	}
	passenger.Contacts = contacts

	return &passenger, nil
}

// UpdatePassenger writes nome, cpf and flight for the row matching the
// internal id. Birthdate never enters the SET list.
func (pr *passengerRepository) UpdatePassenger(ctx context.Context, passenger *domain.Passenger) error {
	query := `
		UPDATE passengers
		SET nome = $1, cpf = $2, flight = $3
		WHERE id = $4;
	`

	tag, err := pr.db.Exec(ctx, query, passenger.Nome, passenger.CPF, passenger.Flight, passenger.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateCPF
		}
		return fmt.Errorf("could not update passenger: %v", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (pr *passengerRepository) DeletePassengerByCPF(ctx context.Context, cpf string) error {
	query := `
		DELETE FROM passengers
		WHERE cpf = $1;
	`

	tag, err := pr.db.Exec(ctx, query, cpf)
	if err != nil {
		return fmt.Errorf("could not delete passenger: %v", err)
	}

	// Contacts go with the passenger through the FK cascade.
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (pr *passengerRepository) AddContact(ctx context.Context, passenger *domain.Passenger, contact *domain.Contact) error {
	insertQuery := `
		INSERT INTO contacts (telefone, tipo, passageiro_id)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	var id int
	err := pr.db.QueryRow(ctx, insertQuery, contact.Telefone, contact.Tipo, passenger.ID).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert contact: %v", err)
	}

	contact.ID = id
	contact.PassageiroID = passenger.ID
	passenger.Contacts = append(passenger.Contacts, *contact)

	return nil
}

func (pr *passengerRepository) loadContacts(ctx context.Context, passengerID int) ([]domain.Contact, error) {
	query := `
		SELECT id, telefone, tipo, passageiro_id
		FROM contacts
		WHERE passageiro_id = $1
		ORDER BY id;
	`

	rows, err := pr.db.Query(ctx, query, passengerID)
	if err != nil {
		return nil, fmt.Errorf("could not get contacts: %v", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var contact domain.Contact

		err := rows.Scan(&contact.ID, &contact.Telefone, &contact.Tipo, &contact.PassageiroID)
		if err != nil {
			return nil, fmt.Errorf("could not scan contact: %v", err)
		}

		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return contacts, nil
}
