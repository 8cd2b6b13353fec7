package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/infrastructure/repository"
	"github.com/vfg2006/lead-radar-api/internal/config"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/pipeline"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
	"github.com/vfg2006/lead-radar-api/pkg/utils"
)

type PipelineRunConfig struct {
	CronSchedule string
	Enabled      bool
	Workers      int
}

type PipelineRunService struct {
	scheduler         *gocron.Scheduler
	adRepo            repository.AdRecordRepository
	scoreRepo         repository.AdvertiserScoreRepository
	runRepo           repository.PipelineRunRepository
	taxonomy          *taxonomy.Config
	config            PipelineRunConfig
	runRunning        bool
	runMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

func NewPipelineRunService(
	adRepo repository.AdRecordRepository,
	scoreRepo repository.AdvertiserScoreRepository,
	runRepo repository.PipelineRunRepository,
	tax *taxonomy.Config,
	cfg *config.Config,
) *PipelineRunService {
	runConfig := PipelineRunConfig{
		CronSchedule: cfg.PipelineRun.CronSchedule, // Default: 5h da manhã todos os dias
		Enabled:      cfg.PipelineRun.Enabled,      // Default: desabilitado
		Workers:      cfg.PipelineRun.Workers,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": runConfig.CronSchedule,
		"workers":       runConfig.Workers,
	}).Info("Configuração do agendador do pipeline de scoring carregada")

	return &PipelineRunService{
		scheduler: scheduler,
		adRepo:    adRepo,
		scoreRepo: scoreRepo,
		runRepo:   runRepo,
		taxonomy:  tax,
		config:    runConfig,
	}
}

func (s *PipelineRunService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do pipeline de scoring desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do pipeline de scoring")

	// Agendar a execução do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunPipeline(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução do pipeline de scoring")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do pipeline de scoring: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do pipeline de scoring")
		s.scheduler.Stop()
	}()

	return nil
}

// RunPipeline executa o lote completo: carrega os anúncios persistidos,
// roda o pipeline e troca o ranking corrente pelo novo
func (s *PipelineRunService) RunPipeline(ctx context.Context) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runRunning {
		logrus.Warn("Pipeline de scoring já está em execução")
		return nil
	}

	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.runRunning = false
		s.lastRunFinishedAt = time.Now()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	run := &domain.PipelineRun{
		ID:        runID,
		Status:    domain.PipelineRunRunning,
		StartedAt: s.lastRunStartedAt,
	}

	if err := s.runRepo.Create(run); err != nil {
		logrus.WithError(err).Error("Erro ao registrar execução do pipeline")
		return err
	}

	logrus.WithField("run_id", runID).Info("Iniciando execução do pipeline de scoring")

	result, err := s.executeRun(ctx, runID)

	now := time.Now()
	run.FinishedAt = &now

	if err != nil {
		run.Status = domain.PipelineRunFailed
		run.Error = err.Error()
		if finishErr := s.runRepo.Finish(run); finishErr != nil {
			logrus.WithError(finishErr).Error("Erro ao registrar falha da execução")
		}
		return err
	}

	run.Status = domain.PipelineRunFinished
	run.TotalAds = result.TotalAds
	run.TotalAdvertisers = len(result.Advertisers)
	run.PassedGate = result.PassedGate
	run.UncategorizedShare = result.UncategorizedShare
	run.JunkRiskInTop20 = result.JunkRiskInTop20

	if err := s.runRepo.Finish(run); err != nil {
		logrus.WithError(err).Error("Erro ao finalizar registro da execução")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":            runID,
		"total_ads":         run.TotalAds,
		"total_advertisers": run.TotalAdvertisers,
		"passed_gate":       run.PassedGate,
	}).Info("Execução do pipeline de scoring concluída")

	return nil
}

func (s *PipelineRunService) executeRun(ctx context.Context, runID string) (*pipeline.Result, error) {
	ads, err := s.adRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar anúncios persistidos: %w", err)
	}

	if len(ads) == 0 {
		return nil, fmt.Errorf("nenhum anúncio persistido para pontuar")
	}

	p := pipeline.New(s.taxonomy, pipeline.WithWorkers(s.config.Workers))

	result, err := p.Run(ads)
	if err != nil {
		return nil, err
	}

	if err := s.scoreRepo.ReplaceForRun(ctx, runID, result.Advertisers); err != nil {
		return nil, fmt.Errorf("erro ao persistir o ranking da execução: %w", err)
	}

	return result, nil
}

// TriggerManualRun inicia manualmente uma execução do pipeline
func (s *PipelineRunService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Pipeline de scoring já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline de scoring")
	go func() {
		if err := s.RunPipeline(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do pipeline de scoring")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PipelineRunService) GetStatus() map[string]any {
	return map[string]any{
		"run_enabled":          s.config.Enabled,
		"run_cron":             s.config.CronSchedule,
		"workers":              s.config.Workers,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
