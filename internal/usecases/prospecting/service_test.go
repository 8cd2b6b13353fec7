package prospecting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-radar-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoreRepo := mocks.NewMockAdvertiserScoreRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
	service := NewService(mockScoreRepo, mockRunRepo)

	ranking := []*domain.ScoredAdvertiser{
		{Profile: domain.AdvertiserProfile{AdvertiserID: "adv-1"}, Rank: 1},
		{Profile: domain.AdvertiserProfile{AdvertiserID: "adv-2"}, Rank: 2},
	}

	mockScoreRepo.EXPECT().ListRanking(20).Return(ranking, nil)

	result, err := service.GetRanking(20)
	assert.NoError(t, err)
	assert.Equal(t, ranking, result)
}

func TestService_GetAdvertiser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		advertiserID string
		setup        func(scoreRepo *mocks.MockAdvertiserScoreRepository)
		expectedErr  error
	}{
		{
			name:         "Anunciante encontrado",
			advertiserID: "adv-1",
			setup: func(scoreRepo *mocks.MockAdvertiserScoreRepository) {
				scoreRepo.EXPECT().
					GetByAdvertiserID("adv-1").
					Return(&domain.ScoredAdvertiser{
						Profile: domain.AdvertiserProfile{AdvertiserID: "adv-1"},
					}, nil)
			},
		},
		{
			name:         "Anunciante inexistente devolve ErrAdvertiserNotFound",
			advertiserID: "adv-404",
			setup: func(scoreRepo *mocks.MockAdvertiserScoreRepository) {
				scoreRepo.EXPECT().GetByAdvertiserID("adv-404").Return(nil, nil)
			},
			expectedErr: ErrAdvertiserNotFound,
		},
		{
			name:         "Identificador vazio é erro sem consultar o repositório",
			advertiserID: "",
			setup:        func(scoreRepo *mocks.MockAdvertiserScoreRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockScoreRepo := mocks.NewMockAdvertiserScoreRepository(ctrl)
			mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
			tt.setup(mockScoreRepo)

			service := NewService(mockScoreRepo, mockRunRepo)
			advertiser, err := service.GetAdvertiser(tt.advertiserID)

			if tt.advertiserID == "" {
				assert.Error(t, err)
				assert.Nil(t, advertiser)
				return
			}

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, advertiser)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.advertiserID, advertiser.Profile.AdvertiserID)
		})
	}
}

func TestService_ListRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoreRepo := mocks.NewMockAdvertiserScoreRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
	service := NewService(mockScoreRepo, mockRunRepo)

	runs := []*domain.PipelineRun{
		{ID: "run-1", Status: domain.PipelineRunFinished},
	}

	mockRunRepo.EXPECT().ListRecent(10).Return(runs, nil)

	result, err := service.ListRuns(10)
	assert.NoError(t, err)
	assert.Equal(t, runs, result)
}

func TestService_GetRanking_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoreRepo := mocks.NewMockAdvertiserScoreRepository(ctrl)
	mockRunRepo := mocks.NewMockPipelineRunRepository(ctrl)
	service := NewService(mockScoreRepo, mockRunRepo)

	mockScoreRepo.EXPECT().ListRanking(0).Return(nil, errors.New("banco fora do ar"))

	result, err := service.GetRanking(0)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "banco fora do ar")
}
