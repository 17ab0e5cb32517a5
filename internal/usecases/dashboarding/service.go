// Package dashboarding calcula os indicadores de desempenho exibidos nos
// painéis do vendedor e do administrador
package dashboarding

import (
	"sort"
	"time"

	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/config"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/pkg/utils"
)

const (
	recentVisitsLimit = 10
	recentSalesLimit  = 5
	followUpsLimit    = 5
)

type DashboardService interface {
	AgentDashboard(salesPersonID int) (*domain.AgentDashboard, error)
	AdminDashboard() (*domain.AdminDashboard, error)
	TeamPerformance() ([]domain.TeamMemberStat, error)
	FeedbackAnalysis() (*domain.FeedbackAnalysis, error)
}

type Service struct {
	userRepo   repository.UserRepository
	saleRepo   repository.SaleRepository
	visitRepo  repository.VisitRepository
	targetRepo repository.TargetRepository
	cfg        config.Dashboard

	// now é substituível nos testes para fixar a data de referência
	now func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	saleRepo repository.SaleRepository,
	visitRepo repository.VisitRepository,
	targetRepo repository.TargetRepository,
	cfg *config.Config,
) DashboardService {
	return &Service{
		userRepo:   userRepo,
		saleRepo:   saleRepo,
		visitRepo:  visitRepo,
		targetRepo: targetRepo,
		cfg:        cfg.Dashboard,
		now:        time.Now,
	}
}

// AgentDashboard monta o painel individual do vendedor
func (s *Service) AgentDashboard(salesPersonID int) (*domain.AgentDashboard, error) {
	today := dateOf(s.now())
	monthStart := utils.MonthStart(today)

	totalSales, err := s.saleRepo.CountSales(&salesPersonID, nil)
	if err != nil {
		return nil, err
	}

	monthlySales, err := s.saleRepo.CountSales(&salesPersonID, &monthStart)
	if err != nil {
		return nil, err
	}

	monthlyRevenue, err := s.saleRepo.SumRevenue(&salesPersonID, &monthStart)
	if err != nil {
		return nil, err
	}

	totalVisits, err := s.visitRepo.CountVisits(&salesPersonID, nil)
	if err != nil {
		return nil, err
	}

	monthlyVisits, err := s.visitRepo.CountVisits(&salesPersonID, &monthStart)
	if err != nil {
		return nil, err
	}

	recentVisits, err := s.visitRepo.ListRecentVisits(salesPersonID, recentVisitsLimit)
	if err != nil {
		return nil, err
	}

	recentSales, err := s.saleRepo.ListRecentSales(salesPersonID, recentSalesLimit)
	if err != nil {
		return nil, err
	}

	followUps, err := s.visitRepo.ListFollowUps(salesPersonID, today, followUpsLimit)
	if err != nil {
		return nil, err
	}

	// Meta do mês pode não existir; o painel mostra o bloco vazio nesse caso
	target, err := s.targetRepo.GetTarget(salesPersonID, monthStart)
	if err != nil {
		return nil, err
	}

	return &domain.AgentDashboard{
		TotalSales:     totalSales,
		MonthlySales:   monthlySales,
		MonthlyRevenue: monthlyRevenue,
		TotalVisits:    totalVisits,
		MonthlyVisits:  monthlyVisits,
		ConversionRate: conversionRate(monthlySales, monthlyVisits),
		RecentVisits:   recentVisits,
		RecentSales:    recentSales,
		FollowUps:      followUps,
		Target:         target,
	}, nil
}

// AdminDashboard monta o painel da organização inteira
func (s *Service) AdminDashboard() (*domain.AdminDashboard, error) {
	today := dateOf(s.now())
	monthStart := utils.MonthStart(today)

	totalSales, err := s.saleRepo.CountSales(nil, nil)
	if err != nil {
		return nil, err
	}

	monthlySales, err := s.saleRepo.CountSales(nil, &monthStart)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.saleRepo.SumRevenue(nil, nil)
	if err != nil {
		return nil, err
	}

	monthlyRevenue, err := s.saleRepo.SumRevenue(nil, &monthStart)
	if err != nil {
		return nil, err
	}

	totalVisits, err := s.visitRepo.CountVisits(nil, nil)
	if err != nil {
		return nil, err
	}

	monthlyVisits, err := s.visitRepo.CountVisits(nil, &monthStart)
	if err != nil {
		return nil, err
	}

	statusBreakdown, err := s.saleRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	outcomeBreakdown, err := s.visitRepo.CountByOutcome(monthStart)
	if err != nil {
		return nil, err
	}

	topPerformers, err := s.topPerformers(monthStart)
	if err != nil {
		return nil, err
	}

	packageStats, err := s.saleRepo.StatsByPackage()
	if err != nil {
		return nil, err
	}

	objections, err := s.visitRepo.ObjectionCounts(monthStart)
	if err != nil {
		return nil, err
	}

	dailyActivity, err := s.dailyActivity(today)
	if err != nil {
		return nil, err
	}

	return &domain.AdminDashboard{
		TotalSales:        totalSales,
		MonthlySales:      monthlySales,
		TotalRevenue:      totalRevenue,
		MonthlyRevenue:    monthlyRevenue,
		TotalVisits:       totalVisits,
		MonthlyVisits:     monthlyVisits,
		OverallConversion: conversionRate(monthlySales, monthlyVisits),
		StatusBreakdown:   statusBreakdown,
		OutcomeBreakdown:  outcomeBreakdown,
		TopPerformers:     topPerformers,
		PackageStats:      packageStats,
		CommonObjections:  *objections,
		DailyActivity:     dailyActivity,
	}, nil
}

// topPerformers monta o ranking mensal de vendedores. Em vez de uma
// consulta por vendedor, busca os agregados agrupados uma única vez e
// faz o fold em memória. Vendedores sem nenhuma venda e nenhuma visita
// no mês ficam fora do ranking.
func (s *Service) topPerformers(monthStart time.Time) ([]domain.PerformerStat, error) {
	agents, err := s.activeAgents()
	if err != nil {
		return nil, err
	}

	salesStats, err := s.saleRepo.SaleStatsByAgent(&monthStart)
	if err != nil {
		return nil, err
	}

	visitCounts, err := s.visitRepo.VisitCountByAgent(&monthStart)
	if err != nil {
		return nil, err
	}

	performers := make([]domain.PerformerStat, 0, len(agents))
	for _, agent := range agents {
		sales := salesStats[agent.ID]
		visits := visitCounts[agent.ID]

		// Só entra no ranking quem teve atividade no mês
		if sales.Count == 0 && visits == 0 {
			continue
		}

		performers = append(performers, domain.PerformerStat{
			UserID:         agent.ID,
			Name:           agent.Name,
			Lastname:       agent.Lastname,
			SalesCount:     sales.Count,
			Revenue:        sales.Revenue,
			VisitsCount:    visits,
			ConversionRate: conversionRate(sales.Count, visits),
		})
	}

	// Ordenação decrescente por receita; empates decididos por visitas e
	// em seguida pela taxa de conversão
	sort.SliceStable(performers, func(i, j int) bool {
		if performers[i].Revenue != performers[j].Revenue {
			return performers[i].Revenue > performers[j].Revenue
		}
		if performers[i].VisitsCount != performers[j].VisitsCount {
			return performers[i].VisitsCount > performers[j].VisitsCount
		}
		return performers[i].ConversionRate > performers[j].ConversionRate
	})

	if limit := s.cfg.TopPerformersLimit; limit > 0 && len(performers) > limit {
		performers = performers[:limit]
	}

	return performers, nil
}

// TeamPerformance monta a tabela de desempenho da equipe: mesma ordenação
// do ranking, mas sem truncar e incluindo vendedores sem atividade, com
// totais históricos além dos números do mês
func (s *Service) TeamPerformance() ([]domain.TeamMemberStat, error) {
	monthStart := utils.MonthStart(dateOf(s.now()))

	agents, err := s.activeAgents()
	if err != nil {
		return nil, err
	}

	totalSalesStats, err := s.saleRepo.SaleStatsByAgent(nil)
	if err != nil {
		return nil, err
	}

	monthlySalesStats, err := s.saleRepo.SaleStatsByAgent(&monthStart)
	if err != nil {
		return nil, err
	}

	totalVisitCounts, err := s.visitRepo.VisitCountByAgent(nil)
	if err != nil {
		return nil, err
	}

	monthlyVisitCounts, err := s.visitRepo.VisitCountByAgent(&monthStart)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.TeamMemberStat, 0, len(agents))
	for _, agent := range agents {
		totalSales := totalSalesStats[agent.ID]
		monthlySales := monthlySalesStats[agent.ID]

		stats = append(stats, domain.TeamMemberStat{
			UserID:         agent.ID,
			Name:           agent.Name,
			Lastname:       agent.Lastname,
			Email:          agent.Email,
			TotalSales:     totalSales.Count,
			MonthlySales:   monthlySales.Count,
			TotalRevenue:   totalSales.Revenue,
			MonthlyRevenue: monthlySales.Revenue,
			TotalVisits:    totalVisitCounts[agent.ID],
			MonthlyVisits:  monthlyVisitCounts[agent.ID],
			ConversionRate: conversionRate(monthlySales.Count, monthlyVisitCounts[agent.ID]),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].MonthlyRevenue != stats[j].MonthlyRevenue {
			return stats[i].MonthlyRevenue > stats[j].MonthlyRevenue
		}
		if stats[i].MonthlyVisits != stats[j].MonthlyVisits {
			return stats[i].MonthlyVisits > stats[j].MonthlyVisits
		}
		return stats[i].ConversionRate > stats[j].ConversionRate
	})

	return stats, nil
}

// FeedbackAnalysis agrega feedback e objeções das visitas do mês corrente
func (s *Service) FeedbackAnalysis() (*domain.FeedbackAnalysis, error) {
	monthStart := utils.MonthStart(dateOf(s.now()))

	visits, err := s.visitRepo.ListVisitsWithFeedback(monthStart)
	if err != nil {
		return nil, err
	}

	objections, err := s.visitRepo.ObjectionCounts(monthStart)
	if err != nil {
		return nil, err
	}

	limit := s.cfg.TopProvidersLimit
	if limit <= 0 {
		limit = 5
	}

	providers, err := s.visitRepo.TopProviders(monthStart, uint64(limit))
	if err != nil {
		return nil, err
	}

	return &domain.FeedbackAnalysis{
		VisitsWithFeedback: visits,
		Objections:         *objections,
		ExistingProviders:  providers,
	}, nil
}

// dailyActivity monta a série diária de vendas e visitas cobrindo a janela
// configurada terminando hoje. Dias sem atividade entram com contagem 0:
// a série nunca tem lacunas.
func (s *Service) dailyActivity(today time.Time) ([]domain.DailyActivityEntry, error) {
	window := s.cfg.TrendWindowDays
	if window <= 0 {
		window = 30
	}

	from := today.AddDate(0, 0, -(window - 1))

	salesByDay, err := s.saleRepo.DailySaleCounts(from, today)
	if err != nil {
		return nil, err
	}

	visitsByDay, err := s.visitRepo.DailyVisitCounts(from, today)
	if err != nil {
		return nil, err
	}

	activity := make([]domain.DailyActivityEntry, 0, window)
	for i := 0; i < window; i++ {
		date := from.AddDate(0, 0, i)
		key := date.Format("2006-01-02")

		activity = append(activity, domain.DailyActivityEntry{
			Date:   date,
			Sales:  salesByDay[key],
			Visits: visitsByDay[key],
		})
	}

	return activity, nil
}

// activeAgents retorna os vendedores ativos (usuários não administrativos)
func (s *Service) activeAgents() ([]*domain.User, error) {
	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	agents := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user.Active && user.IsAgent() {
			agents = append(agents, user)
		}
	}

	return agents, nil
}

// conversionRate calcula (vendas ÷ visitas) × 100 com uma casa decimal.
// Com zero visitas no denominador a taxa é 0, nunca um erro.
func conversionRate(sales, visits int) float64 {
	if visits == 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(float64(sales) / float64(visits) * 100)
}

// dateOf trunca o instante para a data civil
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
