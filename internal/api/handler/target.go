package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/internal/usecases/targeting"
	"github.com/zakcom/sales-tracker-api/pkg/apiErrors"
	"github.com/zakcom/sales-tracker-api/pkg/middleware"
)

type CreateTargetRequest struct {
	SalesPersonID int     `json:"sales_person_id"`
	Month         string  `json:"month"` // MM
	Year          string  `json:"year"`  // YYYY
	TargetAmount  float64 `json:"target_amount"`
	TargetCount   int     `json:"target_count"`
	TargetVisits  int     `json:"target_visits"`
}

// CreateTarget cadastra a meta mensal de um vendedor. Cada vendedor tem no
// máximo uma meta por mês.
func CreateTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTarget")

		var req CreateTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		month, err := parseMonthYear(req.Month, req.Year)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		target := &domain.SalesTarget{
			SalesPersonID: req.SalesPersonID,
			Month:         month,
			TargetAmount:  req.TargetAmount,
			TargetCount:   req.TargetCount,
			TargetVisits:  req.TargetVisits,
		}

		saved, err := service.CreateTarget(target)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, targeting.ErrDuplicateTarget):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Já existe meta cadastrada para este vendedor neste mês", nil)
			case errors.Is(err, targeting.ErrAgentNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, err.Error(), nil)
			case errors.Is(err, targeting.ErrInvalidTarget):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar meta", nil)
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

// GetMyTarget retorna a meta do mês corrente do vendedor autenticado
func GetMyTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		target, err := service.GetCurrentTarget(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar meta do mês", nil)
			return
		}

		// target pode ser nil quando não há meta cadastrada para o mês
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListTargets lista as metas de um mês. Sem parâmetros, usa o mês corrente.
func ListTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthStr := r.URL.Query().Get("month")
		yearStr := r.URL.Query().Get("year")

		var month time.Time
		if monthStr != "" || yearStr != "" {
			parsed, err := parseMonthYear(monthStr, yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			month = parsed
		}

		targets, err := service.ListTargetsByMonth(month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseMonthYear valida mês (01-12) e ano (4 dígitos) e devolve o primeiro
// dia do mês correspondente
func parseMonthYear(month, year string) (time.Time, error) {
	if month == "" || year == "" {
		return time.Time{}, errors.New("é necessário informar mês e ano")
	}

	if len(month) != 2 || month < "01" || month > "12" {
		return time.Time{}, errors.New("mês inválido, use formato de dois dígitos (01-12)")
	}

	if len(year) != 4 {
		return time.Time{}, errors.New("ano inválido, use formato de quatro dígitos (ex: 2025)")
	}

	parsed, err := time.Parse("2006-01", fmt.Sprintf("%s-%s", year, month))
	if err != nil {
		return time.Time{}, errors.New("mês ou ano inválido")
	}

	return parsed, nil
}
