package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

const customersTable = "customers"

type CustomerRepository interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	ListCustomers() ([]*domain.Customer, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	queryBuilder := squirrel.
		Insert(customersTable).
		Columns("reference", "full_name", "phone", "email", "address", "id_number", "prospect_id").
		Values(
			customer.Reference,
			customer.FullName,
			customer.Phone,
			customer.Email,
			customer.Address,
			customer.IDNumber,
			customer.ProspectID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	customerSQL, customerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(customerSQL, customerArgs...).Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) ListCustomers() ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select("id", "reference", "full_name", "phone", "email", "address", "id_number", "prospect_id", "created_at", "updated_at").
		From(customersTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	customerSQL, customerArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(customerSQL, customerArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Reference,
			&customer.FullName,
			&customer.Phone,
			&customer.Email,
			&customer.Address,
			&customer.IDNumber,
			&customer.ProspectID,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}

		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
