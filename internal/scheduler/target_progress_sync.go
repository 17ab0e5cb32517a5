// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/zakcom/sales-tracker-api/infrastructure/repository"
	"github.com/zakcom/sales-tracker-api/internal/config"
	"github.com/zakcom/sales-tracker-api/internal/domain"
	"github.com/zakcom/sales-tracker-api/pkg/utils"
)

type TargetProgressSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// TargetProgressSyncService recalcula periodicamente os valores realizados
// das metas mensais (faturamento, vendas e visitas por vendedor), para que o
// dashboard leia o progresso direto da tabela de metas sem reagregações caras.
type TargetProgressSyncService struct {
	scheduler           *gocron.Scheduler
	targetRepo          repository.TargetRepository
	saleRepo            repository.SaleRepository
	visitRepo           repository.VisitRepository
	config              TargetProgressSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewTargetProgressSyncService(
	targetRepo repository.TargetRepository,
	saleRepo repository.SaleRepository,
	visitRepo repository.VisitRepository,
	cfg *config.Config,
) *TargetProgressSyncService {
	syncConfig := TargetProgressSyncConfig{
		CronSchedule: cfg.TargetProgressSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.TargetProgressSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de progresso de metas carregada")

	return &TargetProgressSyncService{
		scheduler:  scheduler,
		targetRepo: targetRepo,
		saleRepo:   saleRepo,
		visitRepo:  visitRepo,
		config:     syncConfig,
	}
}

func (s *TargetProgressSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização do progresso de metas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do progresso de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateTargetProgress(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do progresso de metas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do progresso de metas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do progresso de metas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TargetProgressSyncService) UpdateTargetProgress() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização do progresso de metas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do progresso de metas")

	if err := s.updateProgressForMonth(time.Now()); err != nil {
		return err
	}

	logrus.Info("Atualização do progresso de metas concluída")

	return nil
}

// updateProgressForMonth recalcula os realizados de todas as metas do mês da
// data informada. Duas consultas agregadas cobrem todos os vendedores de uma
// vez; a distribuição por meta acontece em memória.
func (s *TargetProgressSyncService) updateProgressForMonth(reference time.Time) error {
	monthStart := utils.MonthStart(reference)

	targets, err := s.targetRepo.ListTargetsByMonth(monthStart)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar metas do mês para atualização do progresso")
		return err
	}

	if len(targets) == 0 {
		logrus.WithField("month", monthStart.Format("01-2006")).Info("Nenhuma meta cadastrada para o mês, nada a atualizar")
		return nil
	}

	saleStats, err := s.saleRepo.SaleStatsByAgent(&monthStart)
	if err != nil {
		logrus.WithError(err).Error("Erro ao agregar vendas do mês para atualização do progresso")
		return err
	}

	visitCounts, err := s.visitRepo.VisitCountByAgent(&monthStart)
	if err != nil {
		logrus.WithError(err).Error("Erro ao agregar visitas do mês para atualização do progresso")
		return err
	}

	s.applyAchievedFigures(targets, saleStats, visitCounts)

	if err := s.targetRepo.SaveAchievedFigures(targets); err != nil {
		logrus.WithError(err).Error("Erro ao salvar o progresso de metas atualizado")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"month":   monthStart.Format("01-2006"),
		"targets": len(targets),
	}).Info("Progresso de metas atualizado")

	return nil
}

func (*TargetProgressSyncService) applyAchievedFigures(
	targets []*domain.SalesTarget,
	saleStats map[int]domain.AgentSaleStats,
	visitCounts map[int]int,
) {
	for _, target := range targets {
		stats := saleStats[target.SalesPersonID]
		target.AchievedAmount = stats.Revenue
		target.AchievedCount = stats.Count
		target.AchievedVisits = visitCounts[target.SalesPersonID]
	}
}

// TriggerManualSync inicia manualmente uma sincronização do progresso de metas
func (s *TargetProgressSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do progresso de metas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do progresso de metas")
	go s.UpdateTargetProgress()
}

// GetStatus retorna o status atual do agendador
func (s *TargetProgressSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
