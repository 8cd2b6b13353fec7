package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
	"go.uber.org/mock/gomock"
)

func loadTaxonomies(t *testing.T) *taxonomy.Config {
	t.Helper()

	tax, err := taxonomy.Load("../../taxonomies")
	if err != nil {
		t.Fatalf("erro ao carregar taxonomias de teste: %v", err)
	}

	return tax
}

func TestPipelineRunService_RunPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockScoreRepo := mocks.NewMockAdvertiserScoreRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)

	ads := []domain.AdRecord{
		{AdvertiserID: "1001", AdID: "ad-1", CTAType: "WHATSAPP_MESSAGE"},
		{AdvertiserID: "1002", AdID: "ad-2", CTAType: "CALL_NOW"},
	}

	var created *domain.PipelineRun
	mockRunRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(run *domain.PipelineRun) error {
		created = run
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, domain.PipelineRunRunning, run.Status)
		return nil
	})

	mockAdRepo.EXPECT().ListAll().Return(ads, nil)

	mockScoreRepo.EXPECT().
		ReplaceForRun(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, runID string, advertisers []*domain.ScoredAdvertiser) error {
			assert.Len(t, advertisers, 2)
			return nil
		})

	mockRunRepo.EXPECT().Finish(gomock.Any()).DoAndReturn(func(run *domain.PipelineRun) error {
		assert.Equal(t, domain.PipelineRunFinished, run.Status)
		assert.Equal(t, 2, run.TotalAds)
		assert.Equal(t, 2, run.TotalAdvertisers)
		assert.Equal(t, 2, run.PassedGate)
		assert.NotNil(t, run.FinishedAt)
		return nil
	})

	service := &PipelineRunService{
		adRepo:    mockAdRepo,
		scoreRepo: mockScoreRepo,
		runRepo:   mockRunRepo,
		taxonomy:  loadTaxonomies(t),
		config: PipelineRunConfig{
			CronSchedule: "0 5 * * *",
			Enabled:      true,
			Workers:      2,
		},
	}

	err := service.RunPipeline(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestPipelineRunService_RunPipeline_SemAnunciosRegistraFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockScoreRepo := mocks.NewMockAdvertiserScoreRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)

	mockRunRepo.EXPECT().Create(gomock.Any()).Return(nil)
	mockAdRepo.EXPECT().ListAll().Return([]domain.AdRecord{}, nil)

	mockRunRepo.EXPECT().Finish(gomock.Any()).DoAndReturn(func(run *domain.PipelineRun) error {
		assert.Equal(t, domain.PipelineRunFailed, run.Status)
		assert.Contains(t, run.Error, "nenhum anúncio persistido")
		return nil
	})

	service := &PipelineRunService{
		adRepo:    mockAdRepo,
		scoreRepo: mockScoreRepo,
		runRepo:   mockRunRepo,
		taxonomy:  loadTaxonomies(t),
		config:    PipelineRunConfig{Workers: 1},
	}

	err := service.RunPipeline(context.Background())
	assert.ErrorContains(t, err, "nenhum anúncio persistido")
}

func TestPipelineRunService_RunPipeline_NaoRodaConcorrente(t *testing.T) {
	service := &PipelineRunService{
		runRunning: true,
	}

	// Com uma execução marcada como em andamento, nada é chamado
	err := service.RunPipeline(context.Background())
	assert.NoError(t, err)
}

func TestPipelineRunService_GetStatus(t *testing.T) {
	service := &PipelineRunService{
		config: PipelineRunConfig{
			CronSchedule: "0 5 * * *",
			Enabled:      true,
			Workers:      4,
		},
	}

	status := service.GetStatus()
	assert.Equal(t, true, status["run_enabled"])
	assert.Equal(t, "0 5 * * *", status["run_cron"])
	assert.Equal(t, 4, status["workers"])
}
