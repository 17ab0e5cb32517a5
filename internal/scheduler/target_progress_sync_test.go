package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestTargetProgressSyncService_updateProgressForMonth(t *testing.T) {
	// Data de referência: 16 de janeiro de 2024
	reference := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(targetRepo *mocks.MockTargetRepository, saleRepo *mocks.MockSaleRepository, visitRepo *mocks.MockVisitRepository)
		wantErr bool
	}{
		{
			name: "Realizados distribuídos por vendedor a partir dos agregados",
			setup: func(targetRepo *mocks.MockTargetRepository, saleRepo *mocks.MockSaleRepository, visitRepo *mocks.MockVisitRepository) {
				targetRepo.EXPECT().ListTargetsByMonth(monthStart).Return([]*domain.SalesTarget{
					{ID: 1, SalesPersonID: 7, Month: monthStart, TargetAmount: 800000},
					{ID: 2, SalesPersonID: 8, Month: monthStart, TargetAmount: 600000},
				}, nil)
				saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{
					7: {Count: 3, Revenue: 450000},
				}, nil)
				visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{
					7: 25,
					8: 10,
				}, nil)
				targetRepo.EXPECT().SaveAchievedFigures(gomock.Any()).DoAndReturn(
					func(targets []*domain.SalesTarget) error {
						assert.Len(t, targets, 2)

						assert.Equal(t, 450000.0, targets[0].AchievedAmount)
						assert.Equal(t, 3, targets[0].AchievedCount)
						assert.Equal(t, 25, targets[0].AchievedVisits)

						// Vendedor sem vendas no mês zera os realizados de venda
						assert.Equal(t, 0.0, targets[1].AchievedAmount)
						assert.Equal(t, 0, targets[1].AchievedCount)
						assert.Equal(t, 10, targets[1].AchievedVisits)
						return nil
					})
			},
		},
		{
			name: "Mês sem metas cadastradas - nada a atualizar",
			setup: func(targetRepo *mocks.MockTargetRepository, saleRepo *mocks.MockSaleRepository, visitRepo *mocks.MockVisitRepository) {
				targetRepo.EXPECT().ListTargetsByMonth(monthStart).Return(nil, nil)
			},
		},
		{
			name: "Falha ao buscar as metas interrompe a sincronização",
			setup: func(targetRepo *mocks.MockTargetRepository, saleRepo *mocks.MockSaleRepository, visitRepo *mocks.MockVisitRepository) {
				targetRepo.EXPECT().ListTargetsByMonth(monthStart).Return(nil, errors.New("erro de banco"))
			},
			wantErr: true,
		},
		{
			name: "Falha ao salvar os realizados propaga o erro",
			setup: func(targetRepo *mocks.MockTargetRepository, saleRepo *mocks.MockSaleRepository, visitRepo *mocks.MockVisitRepository) {
				targetRepo.EXPECT().ListTargetsByMonth(monthStart).Return([]*domain.SalesTarget{
					{ID: 1, SalesPersonID: 7, Month: monthStart},
				}, nil)
				saleRepo.EXPECT().SaleStatsByAgent(&monthStart).Return(map[int]domain.AgentSaleStats{}, nil)
				visitRepo.EXPECT().VisitCountByAgent(&monthStart).Return(map[int]int{}, nil)
				targetRepo.EXPECT().SaveAchievedFigures(gomock.Any()).Return(errors.New("erro de banco"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			targetRepo := mocks.NewMockTargetRepository(ctrl)
			saleRepo := mocks.NewMockSaleRepository(ctrl)
			visitRepo := mocks.NewMockVisitRepository(ctrl)
			tt.setup(targetRepo, saleRepo, visitRepo)

			service := &TargetProgressSyncService{
				targetRepo: targetRepo,
				saleRepo:   saleRepo,
				visitRepo:  visitRepo,
			}

			err := service.updateProgressForMonth(reference)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTargetProgressSyncService_updateProgressForMonth_FusoHorarioLocal(t *testing.T) {
	// Com o relógio do servidor em fuso local, a busca das metas usa a mesma
	// chave em UTC com que as metas foram gravadas
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	maputo := time.FixedZone("CAT", 2*60*60)
	reference := time.Date(2024, 1, 16, 10, 0, 0, 0, maputo)
	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	targetRepo := mocks.NewMockTargetRepository(ctrl)
	targetRepo.EXPECT().ListTargetsByMonth(monthStart).Return(nil, nil)

	service := &TargetProgressSyncService{
		targetRepo: targetRepo,
		saleRepo:   mocks.NewMockSaleRepository(ctrl),
		visitRepo:  mocks.NewMockVisitRepository(ctrl),
	}

	assert.NoError(t, service.updateProgressForMonth(reference))
}

func TestTargetProgressSyncService_applyAchievedFigures(t *testing.T) {
	service := &TargetProgressSyncService{}

	targets := []*domain.SalesTarget{
		{SalesPersonID: 7},
		{SalesPersonID: 8},
	}

	service.applyAchievedFigures(targets,
		map[int]domain.AgentSaleStats{
			7: {Count: 2, Revenue: 120000},
		},
		map[int]int{
			7: 14,
		},
	)

	assert.Equal(t, 120000.0, targets[0].AchievedAmount)
	assert.Equal(t, 2, targets[0].AchievedCount)
	assert.Equal(t, 14, targets[0].AchievedVisits)

	assert.Equal(t, 0.0, targets[1].AchievedAmount)
	assert.Equal(t, 0, targets[1].AchievedCount)
	assert.Equal(t, 0, targets[1].AchievedVisits)
}

func TestTargetProgressSyncService_GetStatus(t *testing.T) {
	service := &TargetProgressSyncService{
		config: TargetProgressSyncConfig{
			CronSchedule: "0 2 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
}
