// Package prospecting expõe o ranking de anunciantes e os detalhes de
// cada prospecto para a API
package prospecting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-radar-api/infrastructure/repository"
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

var ErrAdvertiserNotFound = errors.New("anunciante não encontrado")

type ProspectingService interface {
	GetRanking(limit int) ([]*domain.ScoredAdvertiser, error)
	GetAdvertiser(advertiserID string) (*domain.ScoredAdvertiser, error)
	ListRuns(limit int) ([]*domain.PipelineRun, error)
}

type Service struct {
	scoreRepo repository.AdvertiserScoreRepository
	runRepo   repository.PipelineRunRepository
}

func NewService(
	scoreRepo repository.AdvertiserScoreRepository,
	runRepo repository.PipelineRunRepository,
) ProspectingService {
	return &Service{
		scoreRepo: scoreRepo,
		runRepo:   runRepo,
	}
}

func (s *Service) GetRanking(limit int) ([]*domain.ScoredAdvertiser, error) {
	ranking, err := s.scoreRepo.ListRanking(limit)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

func (s *Service) GetAdvertiser(advertiserID string) (*domain.ScoredAdvertiser, error) {
	if advertiserID == "" {
		return nil, errors.New("identificador do anunciante é obrigatório")
	}

	advertiser, err := s.scoreRepo.GetByAdvertiserID(advertiserID)
	if err != nil {
		return nil, err
	}
	if advertiser == nil {
		return nil, ErrAdvertiserNotFound
	}

	return advertiser, nil
}

func (s *Service) ListRuns(limit int) ([]*domain.PipelineRun, error) {
	runs, err := s.runRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return runs, nil
}
