// Package selling cria clientes e vendas e monta as listagens de vendas
package selling

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/pkg/utils"
)

var (
	ErrPackageNotFound = errors.New("pacote não encontrado")
	ErrPackageInactive = errors.New("pacote não está ativo")
	ErrInvalidStatus   = errors.New("status de venda inválido")
	ErrMissingCustomer = errors.New("nome e telefone do cliente são obrigatórios")
)

// SaleListing é a resposta da listagem de vendas com os totais do
// conjunto filtrado
type SaleListing struct {
	Sales  []*domain.Sale    `json:"sales"`
	Totals domain.SaleTotals `json:"totals"`
}

type SaleService interface {
	CreateSale(customer *domain.Customer, sale *domain.Sale) (*domain.Sale, error)
	ListSales(filter domain.SaleFilter) (*SaleListing, error)
	ListCustomers() ([]*domain.Customer, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	packageRepo  repository.PackageRepository
	prospectRepo repository.ProspectRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	packageRepo repository.PackageRepository,
	prospectRepo repository.ProspectRepository,
) SaleService {
	return &Service{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		packageRepo:  packageRepo,
		prospectRepo: prospectRepo,
	}
}

// CreateSale cria o cliente e em seguida a venda. Quando o valor total não
// vem preenchido, ele é derivado do pacote no momento do primeiro save
// (mensalidade × duração + instalação) e nunca mais recalculado: mudanças
// posteriores de preço do pacote não afetam vendas já gravadas.
func (s *Service) CreateSale(customer *domain.Customer, sale *domain.Sale) (*domain.Sale, error) {
	if customer.FullName == "" || customer.Phone == "" {
		return nil, ErrMissingCustomer
	}

	if sale.Status == "" {
		sale.Status = domain.SalePending
	}

	if !sale.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	pkg, err := s.packageRepo.GetPackageByID(sale.PackageID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pacote")
	}

	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	if !pkg.IsActive {
		return nil, ErrPackageInactive
	}

	if sale.ContractDuration == 0 {
		sale.ContractDuration = domain.DefaultContractDuration
	}

	if sale.TotalValue == 0 {
		sale.TotalValue = pkg.MonthlyPrice*float64(sale.ContractDuration) + pkg.InstallationFee
	}

	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}

	reference, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar referência do cliente")
	}
	customer.Reference = reference

	savedCustomer, err := s.customerRepo.CreateCustomer(customer)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente")
	}

	sale.CustomerID = savedCustomer.ID

	savedSale, err := s.saleRepo.CreateSale(sale)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar venda")
	}

	// Cliente veio de um prospect: marcar a conversão. Melhor esforço,
	// a venda já está gravada.
	if customer.ProspectID != nil {
		if err := s.prospectRepo.MarkConverted(*customer.ProspectID); err != nil {
			logrus.WithError(err).WithField("prospect_id", *customer.ProspectID).
				Warn("Venda criada, mas não foi possível marcar o prospect como convertido")
		}
	}

	return savedSale, nil
}

// ListSales lista as vendas do filtro junto com receita total, contagem e
// ticket médio do conjunto. Conjuntos vazios têm soma e média 0.
func (s *Service) ListSales(filter domain.SaleFilter) (*SaleListing, error) {
	sales, err := s.saleRepo.ListSales(filter)
	if err != nil {
		return nil, err
	}

	count, revenue, err := s.saleRepo.SaleTotals(filter)
	if err != nil {
		return nil, err
	}

	totals := domain.SaleTotals{
		TotalRevenue: revenue,
		SalesCount:   count,
	}

	if count > 0 {
		totals.AverageSale = utils.RoundWithTwoDecimalPlace(revenue / float64(count))
	}

	return &SaleListing{
		Sales:  sales,
		Totals: totals,
	}, nil
}

func (s *Service) ListCustomers() ([]*domain.Customer, error) {
	return s.customerRepo.ListCustomers()
}
