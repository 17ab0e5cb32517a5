package dashboarding

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/zakcom/sales-tracker-api/internal/config"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// Data de referência dos testes: 16 de janeiro de 2024
var referenceDate = time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC)

type serviceMocks struct {
	userRepo   *mocks.MockUserRepository
	saleRepo   *mocks.MockSaleRepository
	visitRepo  *mocks.MockVisitRepository
	targetRepo *mocks.MockTargetRepository
}

func newTestService(ctrl *gomock.Controller, cfg config.Dashboard) (*Service, serviceMocks) {
	m := serviceMocks{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		saleRepo:   mocks.NewMockSaleRepository(ctrl),
		visitRepo:  mocks.NewMockVisitRepository(ctrl),
		targetRepo: mocks.NewMockTargetRepository(ctrl),
	}

	service := &Service{
		userRepo:   m.userRepo,
		saleRepo:   m.saleRepo,
		visitRepo:  m.visitRepo,
		targetRepo: m.targetRepo,
		cfg:        cfg,
		now:        func() time.Time { return referenceDate },
	}

	return service, m
}

func agent(id int, name string) *domain.User {
	return &domain.User{
		ID:       id,
		Name:     name,
		Lastname: "Teste",
		Email:    name + "@zakcom.example",
		Active:   true,
		RoleID:   domain.RoleAgent,
	}
}

func TestService_AgentDashboard(t *testing.T) {
	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		salesPersonID int
		setup         func(m serviceMocks)
		validate      func(t *testing.T, dashboard *domain.AgentDashboard)
	}{
		{
			name:          "Taxa de conversão calculada com uma casa decimal",
			salesPersonID: 7,
			setup: func(m serviceMocks) {
				id := 7
				m.saleRepo.EXPECT().CountSales(&id, nil).Return(20, nil)
				m.saleRepo.EXPECT().CountSales(&id, &monthStart).Return(3, nil)
				m.saleRepo.EXPECT().SumRevenue(&id, &monthStart).Return(150000.0, nil)
				m.visitRepo.EXPECT().CountVisits(&id, nil).Return(80, nil)
				m.visitRepo.EXPECT().CountVisits(&id, &monthStart).Return(10, nil)
				m.visitRepo.EXPECT().ListRecentVisits(7, uint64(10)).Return([]*domain.Visit{{ID: 1}}, nil)
				m.saleRepo.EXPECT().ListRecentSales(7, uint64(5)).Return([]*domain.Sale{{ID: 2}}, nil)
				m.visitRepo.EXPECT().ListFollowUps(7, today, uint64(5)).Return(nil, nil)
				m.targetRepo.EXPECT().GetTarget(7, monthStart).Return(&domain.SalesTarget{ID: 3, SalesPersonID: 7}, nil)
			},
			validate: func(t *testing.T, dashboard *domain.AgentDashboard) {
				// 3 vendas ÷ 10 visitas = 30.0%
				assert.Equal(t, 30.0, dashboard.ConversionRate)
				assert.Equal(t, 20, dashboard.TotalSales)
				assert.Equal(t, 3, dashboard.MonthlySales)
				assert.Equal(t, 150000.0, dashboard.MonthlyRevenue)
				assert.Len(t, dashboard.RecentVisits, 1)
				assert.Len(t, dashboard.RecentSales, 1)
				assert.NotNil(t, dashboard.Target)
			},
		},
		{
			name:          "Sem visitas no mês - taxa de conversão zero, nunca erro",
			salesPersonID: 7,
			setup: func(m serviceMocks) {
				id := 7
				m.saleRepo.EXPECT().CountSales(&id, nil).Return(0, nil)
				m.saleRepo.EXPECT().CountSales(&id, &monthStart).Return(0, nil)
				m.saleRepo.EXPECT().SumRevenue(&id, &monthStart).Return(0.0, nil)
				m.visitRepo.EXPECT().CountVisits(&id, nil).Return(0, nil)
				m.visitRepo.EXPECT().CountVisits(&id, &monthStart).Return(0, nil)
				m.visitRepo.EXPECT().ListRecentVisits(7, uint64(10)).Return(nil, nil)
				m.saleRepo.EXPECT().ListRecentSales(7, uint64(5)).Return(nil, nil)
				m.visitRepo.EXPECT().ListFollowUps(7, today, uint64(5)).Return(nil, nil)
				m.targetRepo.EXPECT().GetTarget(7, monthStart).Return(nil, nil)
			},
			validate: func(t *testing.T, dashboard *domain.AgentDashboard) {
				assert.Equal(t, 0.0, dashboard.ConversionRate)
				assert.Nil(t, dashboard.Target)
			},
		},
		{
			name:          "Taxa arredondada para uma casa decimal",
			salesPersonID: 9,
			setup: func(m serviceMocks) {
				id := 9
				m.saleRepo.EXPECT().CountSales(&id, nil).Return(1, nil)
				m.saleRepo.EXPECT().CountSales(&id, &monthStart).Return(1, nil)
				m.saleRepo.EXPECT().SumRevenue(&id, &monthStart).Return(50000.0, nil)
				m.visitRepo.EXPECT().CountVisits(&id, nil).Return(3, nil)
				m.visitRepo.EXPECT().CountVisits(&id, &monthStart).Return(3, nil)
				m.visitRepo.EXPECT().ListRecentVisits(9, uint64(10)).Return(nil, nil)
				m.saleRepo.EXPECT().ListRecentSales(9, uint64(5)).Return(nil, nil)
				m.visitRepo.EXPECT().ListFollowUps(9, today, uint64(5)).Return(nil, nil)
				m.targetRepo.EXPECT().GetTarget(9, monthStart).Return(nil, nil)
			},
			validate: func(t *testing.T, dashboard *domain.AgentDashboard) {
				// 1 ÷ 3 × 100 = 33.333... → 33.3
				assert.Equal(t, 33.3, dashboard.ConversionRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, config.Dashboard{})
			tt.setup(m)

			dashboard, err := service.AgentDashboard(tt.salesPersonID)

			assert.NoError(t, err)
			assert.NotNil(t, dashboard)
			tt.validate(t, dashboard)
		})
	}
}

func TestService_AgentDashboard_FusoHorarioLocal(t *testing.T) {
	// Com o relógio do servidor em fuso local, a meta do mês continua sendo
	// buscada pela mesma chave em UTC com que foi gravada
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	maputo := time.FixedZone("CAT", 2*60*60)
	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 1, 16, 0, 0, 0, 0, maputo)

	service, m := newTestService(ctrl, config.Dashboard{})
	service.now = func() time.Time { return referenceDate.In(maputo) }

	id := 7
	m.saleRepo.EXPECT().CountSales(&id, nil).Return(4, nil)
	m.saleRepo.EXPECT().CountSales(&id, &monthStart).Return(2, nil)
	m.saleRepo.EXPECT().SumRevenue(&id, &monthStart).Return(100000.0, nil)
	m.visitRepo.EXPECT().CountVisits(&id, nil).Return(12, nil)
	m.visitRepo.EXPECT().CountVisits(&id, &monthStart).Return(8, nil)
	m.visitRepo.EXPECT().ListRecentVisits(7, uint64(10)).Return(nil, nil)
	m.saleRepo.EXPECT().ListRecentSales(7, uint64(5)).Return(nil, nil)
	m.visitRepo.EXPECT().ListFollowUps(7, today, uint64(5)).Return(nil, nil)
	m.targetRepo.EXPECT().GetTarget(7, monthStart).
		Return(&domain.SalesTarget{ID: 3, SalesPersonID: 7}, nil)

	dashboard, err := service.AgentDashboard(7)

	assert.NoError(t, err)
	assert.NotNil(t, dashboard.Target)
}

func TestService_topPerformers(t *testing.T) {
	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cfg      config.Dashboard
		setup    func(m serviceMocks)
		validate func(t *testing.T, performers []domain.PerformerStat)
	}{
		{
			name: "Ranking ordenado por receita decrescente",
			cfg:  config.Dashboard{TopPerformersLimit: 5},
			setup: func(m serviceMocks) {
				m.userRepo.EXPECT().ListUser().Return([]*domain.User{
					agent(1, "ana"), agent(2, "bruno"), agent(3, "carla"),
				}, nil)
				m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{
					1: {Count: 2, Revenue: 100000},
					2: {Count: 5, Revenue: 300000},
					3: {Count: 1, Revenue: 50000},
				}, nil)
				m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{
					1: 10, 2: 20, 3: 4,
				}, nil)
			},
			validate: func(t *testing.T, performers []domain.PerformerStat) {
				assert.Len(t, performers, 3)
				assert.Equal(t, 2, performers[0].UserID)
				assert.Equal(t, 1, performers[1].UserID)
				assert.Equal(t, 3, performers[2].UserID)
				assert.Equal(t, 25.0, performers[0].ConversionRate)
			},
		},
		{
			name: "Empate em receita decidido pelo número de visitas",
			cfg:  config.Dashboard{TopPerformersLimit: 5},
			setup: func(m serviceMocks) {
				m.userRepo.EXPECT().ListUser().Return([]*domain.User{
					agent(1, "ana"), agent(2, "bruno"),
				}, nil)
				m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{
					1: {Count: 2, Revenue: 100000},
					2: {Count: 2, Revenue: 100000},
				}, nil)
				m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{
					1: 5, 2: 12,
				}, nil)
			},
			validate: func(t *testing.T, performers []domain.PerformerStat) {
				assert.Len(t, performers, 2)
				assert.Equal(t, 2, performers[0].UserID)
				assert.Equal(t, 1, performers[1].UserID)
			},
		},
		{
			name: "Vendedor sem atividade no mês fica fora do ranking",
			cfg:  config.Dashboard{TopPerformersLimit: 5},
			setup: func(m serviceMocks) {
				m.userRepo.EXPECT().ListUser().Return([]*domain.User{
					agent(1, "ana"), agent(2, "bruno"),
				}, nil)
				m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{
					1: {Count: 1, Revenue: 60000},
				}, nil)
				m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{
					1: 3,
				}, nil)
			},
			validate: func(t *testing.T, performers []domain.PerformerStat) {
				assert.Len(t, performers, 1)
				assert.Equal(t, 1, performers[0].UserID)
			},
		},
		{
			name: "Vendedor só com visitas entra no ranking",
			cfg:  config.Dashboard{TopPerformersLimit: 5},
			setup: func(m serviceMocks) {
				m.userRepo.EXPECT().ListUser().Return([]*domain.User{
					agent(1, "ana"),
				}, nil)
				m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{}, nil)
				m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{
					1: 7,
				}, nil)
			},
			validate: func(t *testing.T, performers []domain.PerformerStat) {
				assert.Len(t, performers, 1)
				assert.Equal(t, 0, performers[0].SalesCount)
				assert.Equal(t, 7, performers[0].VisitsCount)
				assert.Equal(t, 0.0, performers[0].ConversionRate)
			},
		},
		{
			name: "Ranking truncado no limite configurado",
			cfg:  config.Dashboard{TopPerformersLimit: 5},
			setup: func(m serviceMocks) {
				users := make([]*domain.User, 0, 7)
				salesStats := make(map[int]domain.AgentSaleStats, 7)
				visitCounts := make(map[int]int, 7)
				for i := 1; i <= 7; i++ {
					users = append(users, agent(i, "vendedor"))
					salesStats[i] = domain.AgentSaleStats{Count: i, Revenue: float64(i) * 10000}
					visitCounts[i] = i * 2
				}
				m.userRepo.EXPECT().ListUser().Return(users, nil)
				m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(salesStats, nil)
				m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(visitCounts, nil)
			},
			validate: func(t *testing.T, performers []domain.PerformerStat) {
				assert.Len(t, performers, 5)
				// Maior receita primeiro
				assert.Equal(t, 7, performers[0].UserID)
				assert.Equal(t, 3, performers[4].UserID)
			},
		},
		{
			name: "Usuários inativos e administradores não entram no ranking",
			cfg:  config.Dashboard{TopPerformersLimit: 5},
			setup: func(m serviceMocks) {
				inactive := agent(2, "bruno")
				inactive.Active = false
				admin := agent(3, "carla")
				admin.RoleID = domain.RoleAdmin

				m.userRepo.EXPECT().ListUser().Return([]*domain.User{
					agent(1, "ana"), inactive, admin,
				}, nil)
				m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{
					1: {Count: 1, Revenue: 40000},
					2: {Count: 3, Revenue: 90000},
					3: {Count: 2, Revenue: 80000},
				}, nil)
				m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{1: 2, 2: 6, 3: 4}, nil)
			},
			validate: func(t *testing.T, performers []domain.PerformerStat) {
				assert.Len(t, performers, 1)
				assert.Equal(t, 1, performers[0].UserID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, tt.cfg)
			tt.setup(m)

			performers, err := service.topPerformers(monthStart)

			assert.NoError(t, err)
			tt.validate(t, performers)
		})
	}
}

func TestService_TeamPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl, config.Dashboard{})

	m.userRepo.EXPECT().ListUser().Return([]*domain.User{
		agent(1, "ana"), agent(2, "bruno"), agent(3, "carla"),
	}, nil)
	m.saleRepo.EXPECT().SaleStatsByAgent(nil).Return(map[int]domain.AgentSaleStats{
		1: {Count: 10, Revenue: 500000},
		2: {Count: 4, Revenue: 200000},
	}, nil)
	m.saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{
		1: {Count: 1, Revenue: 50000},
		2: {Count: 2, Revenue: 120000},
	}, nil)
	m.visitRepo.EXPECT().VisitCountByAgent(nil).Return(map[int]int{1: 40, 2: 30}, nil)
	m.visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{1: 4, 2: 8}, nil)

	stats, err := service.TeamPerformance()

	assert.NoError(t, err)
	assert.Len(t, stats, 3)

	// Ordenado por receita do mês; quem não tem atividade continua na tabela
	assert.Equal(t, 2, stats[0].UserID)
	assert.Equal(t, 1, stats[1].UserID)
	assert.Equal(t, 3, stats[2].UserID)

	assert.Equal(t, 10, stats[1].TotalSales)
	assert.Equal(t, 500000.0, stats[1].TotalRevenue)
	assert.Equal(t, 25.0, stats[1].ConversionRate)

	assert.Equal(t, 0, stats[2].TotalSales)
	assert.Equal(t, 0.0, stats[2].MonthlyRevenue)
	assert.Equal(t, 0.0, stats[2].ConversionRate)
}

func TestService_dailyActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	from := time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl, config.Dashboard{TrendWindowDays: 30})

	// Apenas dois dias com atividade; o resto da janela deve vir zerado
	m.saleRepo.EXPECT().DailySaleCounts(from, today).Return(map[string]int{
		"2024-01-15": 3,
	}, nil)
	m.visitRepo.EXPECT().DailyVisitCounts(from, today).Return(map[string]int{
		"2024-01-15": 12,
		"2023-12-20": 5,
	}, nil)

	activity, err := service.dailyActivity(today)

	assert.NoError(t, err)
	assert.Len(t, activity, 30)

	// Janela contínua: primeiro dia é from, último é hoje
	assert.Equal(t, from, activity[0].Date)
	assert.Equal(t, today, activity[29].Date)

	// Dia sem atividade entra com contagem 0
	assert.Equal(t, 0, activity[0].Sales)
	assert.Equal(t, 0, activity[0].Visits)

	// 20 de dezembro é o índice 2 da janela
	assert.Equal(t, 5, activity[2].Visits)

	assert.Equal(t, 3, activity[28].Sales)
	assert.Equal(t, 12, activity[28].Visits)
}

func TestService_FeedbackAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl, config.Dashboard{TopProvidersLimit: 5})

	m.visitRepo.EXPECT().ListVisitsWithFeedback(monthStart).Return([]*domain.Visit{
		{ID: 1, Feedback: "Preço alto demais"},
	}, nil)
	m.visitRepo.EXPECT().ObjectionCounts(monthStart).Return(&domain.ObjectionCounts{
		Price:            4,
		Coverage:         1,
		ExistingProvider: 2,
	}, nil)
	m.visitRepo.EXPECT().TopProviders(monthStart, uint64(5)).Return([]domain.ProviderMention{
		{Name: "TVCabo", Count: 2},
	}, nil)

	analysis, err := service.FeedbackAnalysis()

	assert.NoError(t, err)
	assert.Len(t, analysis.VisitsWithFeedback, 1)
	assert.Equal(t, 4, analysis.Objections.Price)
	assert.Equal(t, "TVCabo", analysis.ExistingProviders[0].Name)
}
