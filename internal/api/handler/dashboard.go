package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/internal/usecases/dashboarding"
	"github.com/zakcom/sales-tracker-api/pkg/apiErrors"
	"github.com/zakcom/sales-tracker-api/pkg/log"
	"github.com/zakcom/sales-tracker-api/pkg/middleware"
)

// GetAgentDashboard retorna o painel individual do vendedor autenticado
func GetAgentDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboard, err := service.AgentDashboard(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o painel do vendedor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetAdminDashboard retorna o painel consolidado da operação
func GetAdminDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboard, err := service.AdminDashboard()
		if err != nil {
			logger.WithError(err).Error("admin-dashboard: erro ao montar o painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o painel administrativo", nil)
			return
		}

		logger.WithFields(log.Fields{
			"top_performers": len(dashboard.TopPerformers),
			"daily_entries":  len(dashboard.DailyActivity),
		}).Info("admin-dashboard: painel gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("admin-dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTeamPerformance retorna a tabela de desempenho de todos os vendedores,
// incluindo os sem atividade no mês
func GetTeamPerformance(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.TeamPerformance()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o desempenho da equipe", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(members); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetFeedbackAnalysis retorna a análise de feedback e objeções do mês corrente
func GetFeedbackAnalysis(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := service.FeedbackAnalysis()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar a análise de feedback", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
