package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/zakcom/sales-tracker-api/infrastructure/database/postgres"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

const packagesTable = "internet_packages"

type PackageRepository interface {
	CreatePackage(pkg *domain.InternetPackage) (*domain.InternetPackage, error)
	UpdatePackage(pkg *domain.InternetPackage) error
	DeletePackage(packageID int) error
	GetPackageByID(packageID int) (*domain.InternetPackage, error)
	ListPackages(onlyActive bool) ([]*domain.InternetPackage, error)
}

type packageRepository struct {
	conn *postgres.Connection
}

func NewPackageRepository(conn *postgres.Connection) PackageRepository {
	return &packageRepository{
		conn: conn,
	}
}

func (r *packageRepository) CreatePackage(pkg *domain.InternetPackage) (*domain.InternetPackage, error) {
	queryBuilder := squirrel.
		Insert(packagesTable).
		Columns("name", "speed", "monthly_price", "installation_fee", "description", "is_active").
		Values(pkg.Name, pkg.Speed, pkg.MonthlyPrice, pkg.InstallationFee, pkg.Description, pkg.IsActive).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	pkgSQL, pkgArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(pkgSQL, pkgArgs...).Scan(&pkg.ID, &pkg.CreatedAt)
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

func (r *packageRepository) UpdatePackage(pkg *domain.InternetPackage) error {
	queryBuilder := squirrel.
		Update(packagesTable).
		Set("name", pkg.Name).
		Set("speed", pkg.Speed).
		Set("monthly_price", pkg.MonthlyPrice).
		Set("installation_fee", pkg.InstallationFee).
		Set("description", pkg.Description).
		Set("is_active", pkg.IsActive).
		Where(squirrel.Eq{"id": pkg.ID}).
		PlaceholderFormat(squirrel.Dollar)

	pkgSQL, pkgArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(pkgSQL, pkgArgs...)
	if err != nil {
		return err
	}

	return nil
}

// DeletePackage remove um pacote. A chave estrangeira de sales é RESTRICT:
// pacotes referenciados por vendas retornam ErrPackageInUse.
func (r *packageRepository) DeletePackage(packageID int) error {
	queryBuilder := squirrel.
		Delete(packagesTable).
		Where(squirrel.Eq{"id": packageID}).
		PlaceholderFormat(squirrel.Dollar)

	pkgSQL, pkgArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(pkgSQL, pkgArgs...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrPackageInUse
		}
		return err
	}

	return nil
}

func (r *packageRepository) GetPackageByID(packageID int) (*domain.InternetPackage, error) {
	var pkg domain.InternetPackage
	err := r.conn.QueryRow(
		"SELECT id, name, speed, monthly_price, installation_fee, description, is_active, created_at FROM internet_packages WHERE id = $1",
		packageID,
	).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Speed,
		&pkg.MonthlyPrice,
		&pkg.InstallationFee,
		&pkg.Description,
		&pkg.IsActive,
		&pkg.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *packageRepository) ListPackages(onlyActive bool) ([]*domain.InternetPackage, error) {
	queryBuilder := squirrel.
		Select("id", "name", "speed", "monthly_price", "installation_fee", "description", "is_active", "created_at").
		From(packagesTable).
		OrderBy("monthly_price ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	pkgSQL, pkgArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(pkgSQL, pkgArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var packages []*domain.InternetPackage
	for rows.Next() {
		var pkg domain.InternetPackage
		if err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Speed,
			&pkg.MonthlyPrice,
			&pkg.InstallationFee,
			&pkg.Description,
			&pkg.IsActive,
			&pkg.CreatedAt,
		); err != nil {
			return nil, err
		}

		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
