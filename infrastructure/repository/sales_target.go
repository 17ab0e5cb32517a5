package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

const targetsTable = "sales_targets"

type TargetRepository interface {
	CreateTarget(target *domain.SalesTarget) (*domain.SalesTarget, error)
	GetTarget(salesPersonID int, month time.Time) (*domain.SalesTarget, error)
	ListTargetsByMonth(month time.Time) ([]*domain.SalesTarget, error)
	SaveAchievedFigures(targets []*domain.SalesTarget) error
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// CreateTarget insere uma meta mensal. A tabela tem UNIQUE(sales_person_id,
// month): tentativas de duplicar retornam ErrDuplicateTarget em vez de
// sobrescrever silenciosamente.
func (r *targetRepository) CreateTarget(target *domain.SalesTarget) (*domain.SalesTarget, error) {
	queryBuilder := squirrel.
		Insert(targetsTable).
		Columns("sales_person_id", "month", "target_amount", "target_count", "target_visits").
		Values(target.SalesPersonID, target.Month, target.TargetAmount, target.TargetCount, target.TargetVisits).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	targetSQL, targetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(targetSQL, targetArgs...).Scan(&target.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTarget
		}
		return nil, err
	}

	return target, nil
}

func (r *targetRepository) GetTarget(salesPersonID int, month time.Time) (*domain.SalesTarget, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"sales_person_id",
			"month",
			"target_amount",
			"target_count",
			"target_visits",
			"achieved_amount",
			"achieved_count",
			"achieved_visits",
		).
		From(targetsTable).
		Where(squirrel.Eq{"sales_person_id": salesPersonID, "month": month}).
		PlaceholderFormat(squirrel.Dollar)

	targetSQL, targetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var target domain.SalesTarget
	err = r.conn.QueryRow(targetSQL, targetArgs...).Scan(
		&target.ID,
		&target.SalesPersonID,
		&target.Month,
		&target.TargetAmount,
		&target.TargetCount,
		&target.TargetVisits,
		&target.AchievedAmount,
		&target.AchievedCount,
		&target.AchievedVisits,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &target, nil
}

func (r *targetRepository) ListTargetsByMonth(month time.Time) ([]*domain.SalesTarget, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"sales_person_id",
			"month",
			"target_amount",
			"target_count",
			"target_visits",
			"achieved_amount",
			"achieved_count",
			"achieved_visits",
		).
		From(targetsTable).
		Where(squirrel.Eq{"month": month}).
		OrderBy("sales_person_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	targetSQL, targetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(targetSQL, targetArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var targets []*domain.SalesTarget
	for rows.Next() {
		var target domain.SalesTarget
		if err := rows.Scan(
			&target.ID,
			&target.SalesPersonID,
			&target.Month,
			&target.TargetAmount,
			&target.TargetCount,
			&target.TargetVisits,
			&target.AchievedAmount,
			&target.AchievedCount,
			&target.AchievedVisits,
		); err != nil {
			return nil, err
		}

		targets = append(targets, &target)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return targets, nil
}

// SaveAchievedFigures grava os números alcançados de várias metas em uma
// única transação, para que a sincronização noturna nunca deixe o mês
// meio atualizado
func (r *targetRepository) SaveAchievedFigures(targets []*domain.SalesTarget) error {
	if len(targets) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, target := range targets {
			queryBuilder := squirrel.
				Update(targetsTable).
				Set("achieved_amount", target.AchievedAmount).
				Set("achieved_count", target.AchievedCount).
				Set("achieved_visits", target.AchievedVisits).
				Where(squirrel.Eq{"id": target.ID}).
				PlaceholderFormat(squirrel.Dollar)

			targetSQL, targetArgs, err := queryBuilder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de atualização: %w", err)
			}

			if _, err := tx.Exec(targetSQL, targetArgs...); err != nil {
				return fmt.Errorf("erro ao atualizar meta %d: %w", target.ID, err)
			}
		}

		return nil
	})
}
