package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

const salesTable = "sales"

var saleColumns = []string{
	"id",
	"sales_person_id",
	"customer_id",
	"package_id",
	"status",
	"sale_date",
	"installation_date",
	"contract_duration",
	"total_value",
	"notes",
	"created_at",
	"updated_at",
}

type SaleRepository interface {
	CreateSale(sale *domain.Sale) (*domain.Sale, error)
	ListSales(filter domain.SaleFilter) ([]*domain.Sale, error)
	ListRecentSales(salesPersonID int, limit uint64) ([]*domain.Sale, error)
	SaleTotals(filter domain.SaleFilter) (int, float64, error)
	CountSales(salesPersonID *int, since *time.Time) (int, error)
	SumRevenue(salesPersonID *int, since *time.Time) (float64, error)
	SaleStatsByAgent(since *time.Time) (map[int]domain.AgentSaleStats, error)
	CountByStatus() ([]domain.StatusCount, error)
	StatsByPackage() ([]domain.PackageStat, error)
	DailySaleCounts(from, to time.Time) (map[string]int, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) CreateSale(sale *domain.Sale) (*domain.Sale, error) {
	queryBuilder := squirrel.
		Insert(salesTable).
		Columns(
			"sales_person_id",
			"customer_id",
			"package_id",
			"status",
			"sale_date",
			"installation_date",
			"contract_duration",
			"total_value",
			"notes",
		).
		Values(
			sale.SalesPersonID,
			sale.CustomerID,
			sale.PackageID,
			sale.Status,
			sale.SaleDate,
			sale.InstallationDate,
			sale.ContractDuration,
			sale.TotalValue,
			sale.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(saleSQL, saleArgs...).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSales lista vendas na ordem padrão (mais recentes primeiro).
// Os limites de data do filtro são inclusivos nas duas pontas.
func (r *saleRepository) ListSales(filter domain.SaleFilter) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilter(queryBuilder, filter)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(saleSQL, saleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func (r *saleRepository) ListRecentSales(salesPersonID int, limit uint64) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"sales_person_id": salesPersonID}).
		OrderBy("sale_date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(saleSQL, saleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// SaleTotals retorna contagem e soma de receita do conjunto filtrado.
// COALESCE garante soma 0 para conjuntos vazios.
func (r *saleRepository) SaleTotals(filter domain.SaleFilter) (int, float64, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(total_value), 0)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySaleFilter(queryBuilder, filter)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	var revenue float64
	if err := r.conn.QueryRow(saleSQL, saleArgs...).Scan(&count, &revenue); err != nil {
		return 0, 0, err
	}

	return count, revenue, nil
}

func (r *saleRepository) CountSales(salesPersonID *int, since *time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	if salesPersonID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sales_person_id": *salesPersonID})
	}

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": *since})
	}

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(saleSQL, saleArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *saleRepository) SumRevenue(salesPersonID *int, since *time.Time) (float64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(total_value), 0)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	if salesPersonID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sales_person_id": *salesPersonID})
	}

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": *since})
	}

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue float64
	if err := r.conn.QueryRow(saleSQL, saleArgs...).Scan(&revenue); err != nil {
		return 0, err
	}

	return revenue, nil
}

// SaleStatsByAgent agrega contagem e receita por vendedor em uma única
// consulta agrupada, evitando uma consulta por vendedor ao montar rankings
func (r *saleRepository) SaleStatsByAgent(since *time.Time) (map[int]domain.AgentSaleStats, error) {
	queryBuilder := squirrel.
		Select("sales_person_id", "COUNT(*)", "COALESCE(SUM(total_value), 0)").
		From(salesTable).
		GroupBy("sales_person_id").
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": *since})
	}

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(saleSQL, saleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]domain.AgentSaleStats)
	for rows.Next() {
		var agentID int
		var s domain.AgentSaleStats
		if err := rows.Scan(&agentID, &s.Count, &s.Revenue); err != nil {
			return nil, err
		}
		stats[agentID] = s
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *saleRepository) CountByStatus() ([]domain.StatusCount, error) {
	queryBuilder := squirrel.
		Select("status", "COUNT(*)").
		From(salesTable).
		GroupBy("status").
		OrderBy("COUNT(*) DESC").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(saleSQL, saleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	breakdown := make([]domain.StatusCount, 0)
	for rows.Next() {
		var item domain.StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return breakdown, nil
}

// StatsByPackage agrega vendas por pacote (todo o período), mais vendidos primeiro
func (r *saleRepository) StatsByPackage() ([]domain.PackageStat, error) {
	queryBuilder := squirrel.
		Select("p.name", "COUNT(s.id)", "COALESCE(SUM(s.total_value), 0)").
		From(salesTable + " s").
		Join(packagesTable + " p ON p.id = s.package_id").
		GroupBy("p.name").
		OrderBy("COUNT(s.id) DESC").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(saleSQL, saleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.PackageStat, 0)
	for rows.Next() {
		var item domain.PackageStat
		if err := rows.Scan(&item.PackageName, &item.Count, &item.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// DailySaleCounts conta vendas por dia dentro da janela, chaveado por
// data no formato 2006-01-02. Dias sem vendas não aparecem no mapa.
func (r *saleRepository) DailySaleCounts(from, to time.Time) (map[string]int, error) {
	queryBuilder := squirrel.
		Select("sale_date", "COUNT(*)").
		From(salesTable).
		Where(squirrel.GtOrEq{"sale_date": from}).
		Where(squirrel.LtOrEq{"sale_date": to}).
		GroupBy("sale_date").
		OrderBy("sale_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(saleSQL, saleArgs...)
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

func applySaleFilter(queryBuilder squirrel.SelectBuilder, filter domain.SaleFilter) squirrel.SelectBuilder {
	if filter.SalesPersonID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sales_person_id": *filter.SalesPersonID})
	}

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sale_date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"sale_date": *filter.DateTo})
	}

	return queryBuilder
}

func scanSales(rows *sql.Rows) ([]*domain.Sale, error) {
	var sales []*domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.SalesPersonID,
			&sale.CustomerID,
			&sale.PackageID,
			&sale.Status,
			&sale.SaleDate,
			&sale.InstallationDate,
			&sale.ContractDuration,
			&sale.TotalValue,
			&sale.Notes,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, err
		}

		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
