package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

const visitsTable = "visits"

var visitColumns = []string{
	"id",
	"sales_person_id",
	"prospect_id",
	"visit_date",
	"visit_time",
	"location",
	"outcome",
	"feedback",
	"price_concern",
	"coverage_concern",
	"has_existing_provider",
	"existing_provider_name",
	"follow_up_date",
	"follow_up_notes",
	"created_at",
	"updated_at",
}

type VisitRepository interface {
	CreateVisit(visit *domain.Visit) (*domain.Visit, error)
	LinkProspect(visitID, prospectID int) error
	ListVisits(filter domain.VisitFilter) ([]*domain.Visit, error)
	ListRecentVisits(salesPersonID int, limit uint64) ([]*domain.Visit, error)
	ListFollowUps(salesPersonID int, from time.Time, limit uint64) ([]*domain.Visit, error)
	ListVisitsWithFeedback(since time.Time) ([]*domain.Visit, error)
	CountVisits(salesPersonID *int, since *time.Time) (int, error)
	VisitCountByAgent(since *time.Time) (map[int]int, error)
	CountByOutcome(since time.Time) ([]domain.OutcomeCount, error)
	ObjectionCounts(since time.Time) (*domain.ObjectionCounts, error)
	TopProviders(since time.Time, limit uint64) ([]domain.ProviderMention, error)
	DailyVisitCounts(from, to time.Time) (map[string]int, error)
}

type visitRepository struct {
	conn *postgres.Connection
}

func NewVisitRepository(conn *postgres.Connection) VisitRepository {
	return &visitRepository{
		conn: conn,
	}
}

func (r *visitRepository) CreateVisit(visit *domain.Visit) (*domain.Visit, error) {
	queryBuilder := squirrel.
		Insert(visitsTable).
		Columns(
			"sales_person_id",
			"prospect_id",
			"visit_date",
			"visit_time",
			"location",
			"outcome",
			"feedback",
			"price_concern",
			"coverage_concern",
			"has_existing_provider",
			"existing_provider_name",
			"follow_up_date",
			"follow_up_notes",
		).
		Values(
			visit.SalesPersonID,
			visit.ProspectID,
			visit.VisitDate,
			visit.VisitTime,
			visit.Location,
			visit.Outcome,
			visit.Feedback,
			visit.PriceConcern,
			visit.CoverageConcern,
			visit.HasExistingProvider,
			visit.ExistingProviderName,
			visit.FollowUpDate,
			visit.FollowUpNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(visitSQL, visitArgs...).Scan(&visit.ID, &visit.CreatedAt, &visit.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return visit, nil
}

// LinkProspect preenche o vínculo da visita com o prospect criado depois
// dela. É a única atualização permitida em uma visita já registrada.
func (r *visitRepository) LinkProspect(visitID, prospectID int) error {
	queryBuilder := squirrel.
		Update(visitsTable).
		Set("prospect_id", prospectID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": visitID}).
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(visitSQL, visitArgs...)
	if err != nil {
		return fmt.Errorf("erro ao vincular prospect à visita: %w", err)
	}

	return nil
}

// ListVisits lista visitas na ordem padrão (mais recentes primeiro)
func (r *visitRepository) ListVisits(filter domain.VisitFilter) ([]*domain.Visit, error) {
	queryBuilder := squirrel.
		Select(visitColumns...).
		From(visitsTable).
		OrderBy("visit_date DESC", "visit_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.SalesPersonID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sales_person_id": *filter.SalesPersonID})
	}

	if filter.Outcome != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"outcome": *filter.Outcome})
	}

	if filter.DateFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.DateTo})
	}

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

func (r *visitRepository) ListRecentVisits(salesPersonID int, limit uint64) ([]*domain.Visit, error) {
	queryBuilder := squirrel.
		Select(visitColumns...).
		From(visitsTable).
		Where(squirrel.Eq{"sales_person_id": salesPersonID}).
		OrderBy("visit_date DESC", "visit_time DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// ListFollowUps lista visitas com retorno pendente a partir da data
// informada, mais próximas primeiro
func (r *visitRepository) ListFollowUps(salesPersonID int, from time.Time, limit uint64) ([]*domain.Visit, error) {
	queryBuilder := squirrel.
		Select(visitColumns...).
		From(visitsTable).
		Where(squirrel.Eq{"sales_person_id": salesPersonID, "outcome": domain.OutcomeFollowUp}).
		Where(squirrel.NotEq{"follow_up_date": nil}).
		Where(squirrel.GtOrEq{"follow_up_date": from}).
		OrderBy("follow_up_date ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

func (r *visitRepository) ListVisitsWithFeedback(since time.Time) ([]*domain.Visit, error) {
	queryBuilder := squirrel.
		Select(visitColumns...).
		From(visitsTable).
		Where(squirrel.GtOrEq{"visit_date": since}).
		Where(squirrel.NotEq{"feedback": ""}).
		OrderBy("visit_date DESC", "visit_time DESC").
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

func (r *visitRepository) CountVisits(salesPersonID *int, since *time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(visitsTable).
		PlaceholderFormat(squirrel.Dollar)

	if salesPersonID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sales_person_id": *salesPersonID})
	}

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"visit_date": *since})
	}

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(visitSQL, visitArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// VisitCountByAgent conta visitas por vendedor em uma única consulta
// agrupada, usada pelo fold em memória dos rankings
func (r *visitRepository) VisitCountByAgent(since *time.Time) (map[int]int, error) {
	queryBuilder := squirrel.
		Select("sales_person_id", "COUNT(*)").
		From(visitsTable).
		GroupBy("sales_person_id").
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"visit_date": *since})
	}

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var agentID, count int
		if err := rows.Scan(&agentID, &count); err != nil {
			return nil, err
		}
		counts[agentID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *visitRepository) CountByOutcome(since time.Time) ([]domain.OutcomeCount, error) {
	queryBuilder := squirrel.
		Select("outcome", "COUNT(*)").
		From(visitsTable).
		Where(squirrel.GtOrEq{"visit_date": since}).
		GroupBy("outcome").
		OrderBy("COUNT(*) DESC").
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	breakdown := make([]domain.OutcomeCount, 0)
	for rows.Next() {
		var item domain.OutcomeCount
		if err := rows.Scan(&item.Outcome, &item.Count); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return breakdown, nil
}

// ObjectionCounts conta as três objeções sinalizadas nas visitas desde a
// data informada em uma única passada
func (r *visitRepository) ObjectionCounts(since time.Time) (*domain.ObjectionCounts, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE price_concern)",
			"COUNT(*) FILTER (WHERE coverage_concern)",
			"COUNT(*) FILTER (WHERE has_existing_provider)",
		).
		From(visitsTable).
		Where(squirrel.GtOrEq{"visit_date": since}).
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var counts domain.ObjectionCounts
	err = r.conn.QueryRow(visitSQL, visitArgs...).Scan(
		&counts.Price,
		&counts.Coverage,
		&counts.ExistingProvider,
	)
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

// TopProviders lista os concorrentes nomeados mais mencionados nas visitas
// desde a data informada, ignorando nomes em branco
func (r *visitRepository) TopProviders(since time.Time, limit uint64) ([]domain.ProviderMention, error) {
	queryBuilder := squirrel.
		Select("existing_provider_name", "COUNT(*)").
		From(visitsTable).
		Where(squirrel.GtOrEq{"visit_date": since}).
		Where(squirrel.Eq{"has_existing_provider": true}).
		Where(squirrel.NotEq{"existing_provider_name": ""}).
		GroupBy("existing_provider_name").
		OrderBy("COUNT(*) DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	providers := make([]domain.ProviderMention, 0)
	for rows.Next() {
		var item domain.ProviderMention
		if err := rows.Scan(&item.Name, &item.Count); err != nil {
			return nil, err
		}
		providers = append(providers, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}

// DailyVisitCounts conta visitas por dia dentro da janela, chaveado por
// data no formato 2006-01-02. Dias sem visitas não aparecem no mapa.
func (r *visitRepository) DailyVisitCounts(from, to time.Time) (map[string]int, error) {
	queryBuilder := squirrel.
		Select("visit_date", "COUNT(*)").
		From(visitsTable).
		Where(squirrel.GtOrEq{"visit_date": from}).
		Where(squirrel.LtOrEq{"visit_date": to}).
		GroupBy("visit_date").
		OrderBy("visit_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	visitSQL, visitArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(visitSQL, visitArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day.Format("2006-01-02")] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func scanVisits(rows *sql.Rows) ([]*domain.Visit, error) {
	var visits []*domain.Visit
	for rows.Next() {
		var visit domain.Visit
		if err := rows.Scan(
			&visit.ID,
			&visit.SalesPersonID,
			&visit.ProspectID,
			&visit.VisitDate,
			&visit.VisitTime,
			&visit.Location,
			&visit.Outcome,
			&visit.Feedback,
			&visit.PriceConcern,
			&visit.CoverageConcern,
			&visit.HasExistingProvider,
			&visit.ExistingProviderName,
			&visit.FollowUpDate,
			&visit.FollowUpNotes,
			&visit.CreatedAt,
			&visit.UpdatedAt,
		); err != nil {
			return nil, err
		}

		visits = append(visits, &visit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return visits, nil
}
