package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/internal/usecases/selling"
	"github.com/zakcom/sales-tracker-api/pkg/apiErrors"
	"github.com/zakcom/sales-tracker-api/pkg/middleware"
	"github.com/zakcom/sales-tracker-api/pkg/utils"
)

// CreateSaleRequest carrega os dados do cliente e da venda em um único corpo
type CreateSaleRequest struct {
	Customer struct {
		FullName   string  `json:"full_name"`
		Phone      string  `json:"phone"`
		Email      *string `json:"email"`
		Address    string  `json:"address"`
		IDNumber   string  `json:"id_number"`
		ProspectID *int    `json:"prospect_id"`
	} `json:"customer"`
	PackageID        int               `json:"package_id"`
	Status           domain.SaleStatus `json:"status"`
	SaleDate         string            `json:"sale_date"` // YYYY-MM-DD; default hoje
	ContractDuration int               `json:"contract_duration"`
	TotalValue       float64           `json:"total_value"`
	Notes            string            `json:"notes"`
}

// CreateSale registra uma venda do vendedor autenticado, criando o cliente
// junto. Se a venda veio de um prospect, ele é marcado como convertido.
func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		customer := &domain.Customer{
			FullName:   req.Customer.FullName,
			Phone:      req.Customer.Phone,
			Email:      req.Customer.Email,
			Address:    req.Customer.Address,
			IDNumber:   req.Customer.IDNumber,
			ProspectID: req.Customer.ProspectID,
		}

		sale := &domain.Sale{
			SalesPersonID:    userClaims.UserID,
			PackageID:        req.PackageID,
			Status:           req.Status,
			ContractDuration: req.ContractDuration,
			TotalValue:       req.TotalValue,
			Notes:            req.Notes,
		}

		if req.SaleDate != "" {
			saleDate, err := utils.ParseDate(req.SaleDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da venda inválida, use YYYY-MM-DD", nil)
				return
			}
			sale.SaleDate = *saleDate
		}

		saved, err := service.CreateSale(customer, sale)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, selling.ErrMissingCustomer):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, selling.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, selling.ErrPackageNotFound), errors.Is(err, selling.ErrPackageInactive):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSales lista vendas com filtros opcionais e os totais do conjunto
// filtrado. Vendedores enxergam apenas as próprias vendas.
func ListSales(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter, err := saleFilterFromQuery(r, userClaims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		listing, err := service.ListSales(*filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(listing); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func saleFilterFromQuery(r *http.Request, userClaims *domain.Claims) (*domain.SaleFilter, error) {
	filter := &domain.SaleFilter{}

	// Vendedores só veem as próprias vendas
	if userClaims.UserRoleID == domain.RoleAgent {
		salesPersonID := userClaims.UserID
		filter.SalesPersonID = &salesPersonID
	} else if idStr := r.URL.Query().Get("sales_person_id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, errors.New("sales_person_id inválido")
		}
		filter.SalesPersonID = &id
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := domain.SaleStatus(statusStr)
		if !status.Valid() {
			return nil, errors.New("status inválido")
		}
		filter.Status = &status
	}

	if dateStr := r.URL.Query().Get("start_date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			return nil, errors.New("start_date inválida, use YYYY-MM-DD")
		}
		filter.DateFrom = date
	}

	if dateStr := r.URL.Query().Get("end_date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			return nil, errors.New("end_date inválida, use YYYY-MM-DD")
		}
		filter.DateTo = date
	}

	return filter, nil
}

// ListCustomers lista os clientes cadastrados
func ListCustomers(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
