// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// InternetPackage representa um plano de internet ofertado nas visitas
type InternetPackage struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Speed           string    `json:"speed"` // ex: "10 Mbps", "50 Mbps"
	MonthlyPrice    float64   `json:"monthly_price"`
	InstallationFee float64   `json:"installation_fee"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateInternetPackageRequest struct {
	ID              int      `json:"id"`
	Name            *string  `json:"name"`
	Speed           *string  `json:"speed"`
	MonthlyPrice    *float64 `json:"monthly_price"`
	InstallationFee *float64 `json:"installation_fee"`
	Description     *string  `json:"description"`
	IsActive        *bool    `json:"is_active"`
}
