package catalog

import (
	"github.com/pkg/errors"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/domain"
)

var (
	ErrPackageNotFound = errors.New("pacote não encontrado")
	ErrMissingFields   = errors.New("nome, velocidade e preço mensal são obrigatórios")
	ErrPackageInUse    = repository.ErrPackageInUse
)

type PackageService interface {
	CreatePackage(pkg *domain.InternetPackage) (*domain.InternetPackage, error)
	UpdatePackage(req *domain.UpdateInternetPackageRequest) (*domain.InternetPackage, error)
	DeletePackage(packageID int) error
	GetPackage(packageID int) (*domain.InternetPackage, error)
	ListPackages(onlyActive bool) ([]*domain.InternetPackage, error)
}

type Service struct {
	packageRepo repository.PackageRepository
}

func NewService(packageRepo repository.PackageRepository) PackageService {
	return &Service{
		packageRepo: packageRepo,
	}
}

func (s *Service) CreatePackage(pkg *domain.InternetPackage) (*domain.InternetPackage, error) {
	if pkg.Name == "" || pkg.Speed == "" || pkg.MonthlyPrice <= 0 {
		return nil, ErrMissingFields
	}

	// Pacote novo sempre entra ativo; inativação acontece via update.
	pkg.IsActive = true

	saved, err := s.packageRepo.CreatePackage(pkg)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o pacote")
	}

	return saved, nil
}

// UpdatePackage aplica uma atualização parcial: somente os campos presentes
// na requisição substituem os valores atuais.
func (s *Service) UpdatePackage(req *domain.UpdateInternetPackageRequest) (*domain.InternetPackage, error) {
	pkg, err := s.packageRepo.GetPackageByID(req.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o pacote")
	}

	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}

	if req.Speed != nil {
		pkg.Speed = *req.Speed
	}

	if req.MonthlyPrice != nil {
		pkg.MonthlyPrice = *req.MonthlyPrice
	}

	if req.InstallationFee != nil {
		pkg.InstallationFee = *req.InstallationFee
	}

	if req.Description != nil {
		pkg.Description = *req.Description
	}

	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if pkg.Name == "" || pkg.Speed == "" || pkg.MonthlyPrice <= 0 {
		return nil, ErrMissingFields
	}

	if err := s.packageRepo.UpdatePackage(pkg); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar o pacote")
	}

	return pkg, nil
}

// DeletePackage remove um pacote do catálogo. Pacotes já usados em vendas
// não podem ser removidos; nesse caso o caminho é inativá-los via update.
func (s *Service) DeletePackage(packageID int) error {
	pkg, err := s.packageRepo.GetPackageByID(packageID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar o pacote")
	}

	if pkg == nil {
		return ErrPackageNotFound
	}

	if err := s.packageRepo.DeletePackage(packageID); err != nil {
		if errors.Is(err, repository.ErrPackageInUse) {
			return ErrPackageInUse
		}
		return errors.Wrap(err, "erro ao remover o pacote")
	}

	return nil
}

func (s *Service) GetPackage(packageID int) (*domain.InternetPackage, error) {
	pkg, err := s.packageRepo.GetPackageByID(packageID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o pacote")
	}

	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	return pkg, nil
}

func (s *Service) ListPackages(onlyActive bool) ([]*domain.InternetPackage, error) {
	packages, err := s.packageRepo.ListPackages(onlyActive)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os pacotes")
	}

	return packages, nil
}
