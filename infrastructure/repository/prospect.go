package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

const prospectsTable = "prospects"

type ProspectRepository interface {
	CreateProspect(prospect *domain.Prospect) (*domain.Prospect, error)
	ListProspects(filter domain.ProspectFilter) ([]*domain.Prospect, error)
	MarkConverted(prospectID int) error
}

type prospectRepository struct {
	conn *postgres.Connection
}

func NewProspectRepository(conn *postgres.Connection) ProspectRepository {
	return &prospectRepository{
		conn: conn,
	}
}

func (r *prospectRepository) CreateProspect(prospect *domain.Prospect) (*domain.Prospect, error) {
	queryBuilder := squirrel.
		Insert(prospectsTable).
		Columns(
			"full_name",
			"phone",
			"email",
			"address",
			"location",
			"interest_level",
			"preferred_package_id",
			"added_by_id",
		).
		Values(
			prospect.FullName,
			prospect.Phone,
			prospect.Email,
			prospect.Address,
			prospect.Location,
			prospect.InterestLevel,
			prospect.PreferredPackageID,
			prospect.AddedByID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	prospectSQL, prospectArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(prospectSQL, prospectArgs...).Scan(
		&prospect.ID,
		&prospect.CreatedAt,
		&prospect.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return prospect, nil
}

func (r *prospectRepository) ListProspects(filter domain.ProspectFilter) ([]*domain.Prospect, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"full_name",
			"phone",
			"email",
			"address",
			"location",
			"interest_level",
			"preferred_package_id",
			"added_by_id",
			"created_at",
			"updated_at",
		).
		From(prospectsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.AddedByID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"added_by_id": *filter.AddedByID})
	}

	if filter.InterestLevel != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"interest_level": *filter.InterestLevel})
	}

	prospectSQL, prospectArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(prospectSQL, prospectArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var prospects []*domain.Prospect
	for rows.Next() {
		var prospect domain.Prospect
		if err := rows.Scan(
			&prospect.ID,
			&prospect.FullName,
			&prospect.Phone,
			&prospect.Email,
			&prospect.Address,
			&prospect.Location,
			&prospect.InterestLevel,
			&prospect.PreferredPackageID,
			&prospect.AddedByID,
			&prospect.CreatedAt,
			&prospect.UpdatedAt,
		); err != nil {
			return nil, err
		}

		prospects = append(prospects, &prospect)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prospects, nil
}

// MarkConverted atualiza o nível de interesse do prospect quando ele vira cliente
func (r *prospectRepository) MarkConverted(prospectID int) error {
	queryBuilder := squirrel.
		Update(prospectsTable).
		Set("interest_level", domain.InterestConverted).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": prospectID}).
		PlaceholderFormat(squirrel.Dollar)

	prospectSQL, prospectArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(prospectSQL, prospectArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar prospect: %w", err)
	}

	return nil
}
