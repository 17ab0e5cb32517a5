package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/internal/usecases/visiting"
	"github.com/zakcom/sales-tracker-api/pkg/apiErrors"
	"github.com/zakcom/sales-tracker-api/pkg/middleware"
	"github.com/zakcom/sales-tracker-api/pkg/utils"
)

// CreateVisitRequest carrega a visita e, opcionalmente, os dados do
// prospect identificado durante ela
type CreateVisitRequest struct {
	VisitDate            string                   `json:"visit_date"` // YYYY-MM-DD; default hoje
	VisitTime            string                   `json:"visit_time"` // HH:MM:SS
	Location             string                   `json:"location"`
	Outcome              domain.VisitOutcome      `json:"outcome"`
	Feedback             string                   `json:"feedback"`
	PriceConcern         bool                     `json:"price_concern"`
	CoverageConcern      bool                     `json:"coverage_concern"`
	HasExistingProvider  bool                     `json:"has_existing_provider"`
	ExistingProviderName string                   `json:"existing_provider_name"`
	FollowUpDate         string                   `json:"follow_up_date"` // YYYY-MM-DD
	FollowUpNotes        string                   `json:"follow_up_notes"`
	Prospect             visiting.ProspectDetails `json:"prospect"`
}

// CreateVisit registra uma visita do vendedor autenticado. A visita é
// sempre gravada; se a criação do prospect associado falhar, a resposta
// traz um aviso em vez de erro.
func CreateVisit(service visiting.VisitService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req CreateVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		visit := &domain.Visit{
			SalesPersonID:        userClaims.UserID,
			VisitTime:            req.VisitTime,
			Location:             req.Location,
			Outcome:              req.Outcome,
			Feedback:             req.Feedback,
			PriceConcern:         req.PriceConcern,
			CoverageConcern:      req.CoverageConcern,
			HasExistingProvider:  req.HasExistingProvider,
			ExistingProviderName: req.ExistingProviderName,
			FollowUpNotes:        req.FollowUpNotes,
		}

		if req.VisitDate != "" {
			visitDate, err := utils.ParseDate(req.VisitDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da visita inválida, use YYYY-MM-DD", nil)
				return
			}
			visit.VisitDate = *visitDate
		} else {
			visit.VisitDate = time.Now()
		}

		if req.FollowUpDate != "" {
			followUpDate, err := utils.ParseDate(req.FollowUpDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de follow-up inválida, use YYYY-MM-DD", nil)
				return
			}
			visit.FollowUpDate = followUpDate
		}

		result, err := service.LogVisit(visit, req.Prospect)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, visiting.ErrInvalidOutcome):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, visiting.ErrMissingFields):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar visita", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListVisits lista visitas com filtros opcionais. Vendedores enxergam
// apenas as próprias visitas; admins e supervisores podem filtrar por
// vendedor via sales_person_id.
func ListVisits(service visiting.VisitService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter, err := visitFilterFromQuery(r, userClaims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		visits, err := service.ListVisits(*filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar visitas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(visits); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func visitFilterFromQuery(r *http.Request, userClaims *domain.Claims) (*domain.VisitFilter, error) {
	filter := &domain.VisitFilter{}

	// Vendedores só veem as próprias visitas
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

	if outcomeStr := r.URL.Query().Get("outcome"); outcomeStr != "" {
		outcome := domain.VisitOutcome(outcomeStr)
		if !outcome.Valid() {
			return nil, errors.New("outcome inválido")
		}
		filter.Outcome = &outcome
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

// ListProspects lista prospects com filtros opcionais. Vendedores enxergam
// apenas os prospects que eles mesmos cadastraram.
func ListProspects(service visiting.VisitService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := domain.ProspectFilter{}

		if userClaims.UserRoleID == domain.RoleAgent {
			addedByID := userClaims.UserID
			filter.AddedByID = &addedByID
		}

		if levelStr := r.URL.Query().Get("interest_level"); levelStr != "" {
			level := domain.InterestLevel(levelStr)
			if !level.Valid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "interest_level inválido", nil)
				return
			}
			filter.InterestLevel = &level
		}

		prospects, err := service.ListProspects(filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar prospects", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(prospects); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
