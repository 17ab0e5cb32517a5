package domain

import "time"

// SaleStatus indica o estágio de uma venda
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleApproved  SaleStatus = "approved"
	SaleInstalled SaleStatus = "installed"
	SaleActive    SaleStatus = "active"
	SaleCancelled SaleStatus = "cancelled"
)

// Valid indica se o valor pertence ao conjunto fechado de status
func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SaleApproved, SaleInstalled, SaleActive, SaleCancelled:
		return true
	}
	return false
}

// DefaultContractDuration é a duração de contrato assumida quando a venda
// não informa um valor, em meses
const DefaultContractDuration = 12

// Sale representa uma venda fechada por um vendedor. TotalValue, quando não
// informado na criação, é derivado uma única vez do pacote vendido
// (mensalidade × duração do contrato + taxa de instalação) e nunca é
// recalculado, mesmo que o preço do pacote mude depois.
type Sale struct {
	ID               int        `json:"id"`
	SalesPersonID    int        `json:"sales_person_id"`
	CustomerID       int        `json:"customer_id"`
	PackageID        int        `json:"package_id"`
	Status           SaleStatus `json:"status"`
	SaleDate         time.Time  `json:"sale_date"`
	InstallationDate *time.Time `json:"installation_date"`
	ContractDuration int        `json:"contract_duration"` // meses
	TotalValue       float64    `json:"total_value"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SaleFilter restringe listagens de vendas. DateFrom e DateTo são
// inclusivos nas duas pontas.
type SaleFilter struct {
	SalesPersonID *int
	Status        *SaleStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}

// SaleTotals agrega os totais do conjunto filtrado exibido na listagem
type SaleTotals struct {
	TotalRevenue float64 `json:"total_revenue"`
	SalesCount   int     `json:"sales_count"`
	AverageSale  float64 `json:"average_sale"`
}

// AgentSaleStats agrega contagem e receita de vendas de um vendedor,
// resultado das consultas agrupadas usadas pelos dashboards
type AgentSaleStats struct {
	Count   int
	Revenue float64
}
