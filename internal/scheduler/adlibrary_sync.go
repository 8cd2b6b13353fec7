// Package scheduler contém os serviços de agendamento para sincronização
// do dataset e execução do pipeline de scoring
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/lead-radar-api/infrastructure/repository"
	"github.com/vfg2006/lead-radar-api/internal/config"
)

type AdLibrarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type AdLibrarySyncService struct {
	scheduler           *gocron.Scheduler
	integrator          adlibrary.Integrator
	adRepo              repository.AdRecordRepository
	config              AdLibrarySyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAdLibrarySyncService(
	integrator adlibrary.Integrator,
	adRepo repository.AdRecordRepository,
	cfg *config.Config,
) *AdLibrarySyncService {
	syncConfig := AdLibrarySyncConfig{
		CronSchedule: cfg.AdLibrarySync.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.AdLibrarySync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de sincronização do dataset carregada")

	return &AdLibrarySyncService{
		scheduler:  scheduler,
		integrator: integrator,
		adRepo:     adRepo,
		config:     syncConfig,
	}
}

func (s *AdLibrarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização do dataset de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização do dataset de anúncios")

	// Agendar a sincronização do dataset
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncAds(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do dataset de anúncios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do dataset de anúncios: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização do dataset de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAds baixa o dataset corrente do ator e persiste os anúncios novos
func (s *AdLibrarySyncService) SyncAds(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização do dataset de anúncios já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando sincronização do dataset de anúncios")

	ads, err := s.integrator.FetchAds(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao baixar o dataset de anúncios")
		return err
	}

	if len(ads) == 0 {
		logrus.Info("Dataset vazio, nada a persistir")
		return nil
	}

	if err := s.adRepo.SaveBatch(ads); err != nil {
		logrus.WithError(err).Error("Erro ao persistir o dataset de anúncios")
		return err
	}

	total, err := s.adRepo.Count()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao contar anúncios persistidos")
	}

	logrus.WithFields(logrus.Fields{
		"fetched_ads": len(ads),
		"total_ads":   total,
	}).Info("Sincronização do dataset de anúncios concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização do dataset
func (s *AdLibrarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do dataset de anúncios")
	go func() {
		if err := s.SyncAds(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do dataset de anúncios")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *AdLibrarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
