// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
	"github.com/vfg2006/app-rank-navi-api/internal/usecases/ingesting"
)

type RankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type RankingSyncService struct {
	scheduler           *gocron.Scheduler
	ingestingService    ingesting.IngestingService
	config              RankingSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRankingSyncService(
	ingestingService ingesting.IngestingService,
	cfg *config.Config,
) *RankingSyncService {
	syncConfig := RankingSyncConfig{
		CronSchedule: cfg.RankingSync.CronSchedule, // Default: 22h UTC (7h JST)
		SyncEnabled:  cfg.RankingSync.Enabled,      // Default: desabilitado
	}

	// O horário do cron é definido em UTC para o snapshot diário cair sempre
	// no mesmo dia, independente do fuso do host
	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de sincronização de rankings carregada")

	return &RankingSyncService{
		scheduler:        scheduler,
		ingestingService: ingestingService,
		config:           syncConfig,
	}
}

func (s *RankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização de rankings desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de rankings")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncRankings(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de rankings")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de rankings: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de rankings")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncRankings executa um sweep completo de ingestão. Uma execução por vez; a
// segunda chamada concorrente é ignorada.
func (s *RankingSyncService) SyncRankings(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de rankings já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de rankings")

	summary := s.ingestingService.FetchAll(ctx)

	logrus.WithFields(logrus.Fields{
		"success_count": summary.SuccessCount,
		"total_tasks":   summary.TotalTasks,
		"total_apps":    summary.TotalApps,
		"elapsed_sec":   summary.ElapsedSec,
	}).Info("Sincronização de rankings concluída")

	if summary.SuccessCount < summary.TotalTasks {
		logrus.WithFields(logrus.Fields{
			"failed_tasks": summary.TotalTasks - summary.SuccessCount,
		}).Warn("Sincronização de rankings concluída com tarefas falhas")
	}

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de rankings
func (s *RankingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de rankings já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de rankings")
	go s.SyncRankings(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *RankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
