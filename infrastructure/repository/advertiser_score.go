package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/lead-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const advertiserScoresTable = "advertiser_scores"

type AdvertiserScoreRepository interface {
	ReplaceForRun(ctx context.Context, runID string, advertisers []*domain.ScoredAdvertiser) error
	ListRanking(limit int) ([]*domain.ScoredAdvertiser, error)
	GetByAdvertiserID(advertiserID string) (*domain.ScoredAdvertiser, error)
}

type advertiserScoreRepository struct {
	conn *postgres.Connection
}

func NewAdvertiserScoreRepository(conn *postgres.Connection) AdvertiserScoreRepository {
	return &advertiserScoreRepository{
		conn: conn,
	}
}

// ReplaceForRun troca o resultado corrente pelo da execução informada, em
// uma única transação: a API nunca observa um ranking pela metade
func (r *advertiserScoreRepository) ReplaceForRun(ctx context.Context, runID string, advertisers []*domain.ScoredAdvertiser) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", advertiserScoresTable)); err != nil {
			return fmt.Errorf("erro ao limpar scores anteriores: %w", err)
		}

		for _, adv := range advertisers {
			moneyJSON, err := json.Marshal(adv.Money.Breakdown)
			if err != nil {
				return err
			}
			urgencyJSON, err := json.Marshal(adv.Urgency.Breakdown)
			if err != nil {
				return err
			}
			fitJSON, err := json.Marshal(adv.Fit.Breakdown)
			if err != nil {
				return err
			}

			scoreSQL, scoreArgs, err := squirrel.
				Insert(advertiserScoresTable).
				Columns(
					"run_id",
					"advertiser_id",
					"advertiser_name",
					"page_category",
					"total_ads",
					"active_ads",
					"share_message",
					"share_call",
					"share_form",
					"share_web",
					"velocity_30d",
					"always_on_share",
					"creative_refresh_ratio",
					"dominant_cta",
					"dominant_destination",
					"domains",
					"gate_passed",
					"gate_reason",
					"money_total",
					"money_breakdown",
					"urgency_total",
					"urgency_breakdown",
					"fit_total",
					"fit_breakdown",
					"cluster_label",
					"multi_funnel",
					"junk_risk",
					"total_score",
					"rank",
					"scoring_error",
				).
				Values(
					runID,
					adv.Profile.AdvertiserID,
					adv.Profile.AdvertiserName,
					adv.Profile.PageCategory,
					adv.Profile.TotalAds,
					adv.Profile.ActiveAds,
					adv.Profile.ShareMessage,
					adv.Profile.ShareCall,
					adv.Profile.ShareForm,
					adv.Profile.ShareWeb,
					adv.Profile.Velocity30d,
					adv.Profile.AlwaysOnShare,
					adv.Profile.CreativeRatio,
					adv.Profile.DominantCTA,
					string(adv.Profile.DominantDestination),
					pq.Array(adv.Profile.Domains),
					adv.Gate.Passed,
					string(adv.Gate.Reason),
					adv.Money.Total,
					string(moneyJSON),
					adv.Urgency.Total,
					string(urgencyJSON),
					adv.Fit.Total,
					string(fitJSON),
					string(adv.Cluster.Label),
					adv.Cluster.MultiFunnel,
					adv.Cluster.JunkRisk,
					adv.Cluster.TotalScore,
					adv.Rank,
					adv.ScoringError,
				).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir insert de score: %w", err)
			}

			if _, err := tx.ExecContext(ctx, scoreSQL, scoreArgs...); err != nil {
				return fmt.Errorf("erro ao inserir score do anunciante %s: %w", adv.Profile.AdvertiserID, err)
			}
		}

		return nil
	})
}

func (r *advertiserScoreRepository) ListRanking(limit int) ([]*domain.ScoredAdvertiser, error) {
	queryBuilder := r.selectScores().OrderBy("rank ASC")
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	scoresSQL, scoresArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(scoresSQL, scoresArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ranking: %w", err)
	}
	defer rows.Close()

	advertisers := make([]*domain.ScoredAdvertiser, 0)
	for rows.Next() {
		adv, err := r.scanScore(rows)
		if err != nil {
			return nil, err
		}
		advertisers = append(advertisers, adv)
	}

	return advertisers, rows.Err()
}

func (r *advertiserScoreRepository) GetByAdvertiserID(advertiserID string) (*domain.ScoredAdvertiser, error) {
	scoresSQL, scoresArgs, err := r.selectScores().
		Where(squirrel.Eq{"advertiser_id": advertiserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(scoresSQL, scoresArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return r.scanScore(rows)
}

func (r *advertiserScoreRepository) selectScores() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"advertiser_id",
			"advertiser_name",
			"page_category",
			"total_ads",
			"active_ads",
			"share_message",
			"share_call",
			"share_form",
			"share_web",
			"velocity_30d",
			"always_on_share",
			"creative_refresh_ratio",
			"dominant_cta",
			"dominant_destination",
			"domains",
			"gate_passed",
			"gate_reason",
			"money_total",
			"money_breakdown",
			"urgency_total",
			"urgency_breakdown",
			"fit_total",
			"fit_breakdown",
			"cluster_label",
			"multi_funnel",
			"junk_risk",
			"total_score",
			"rank",
			"scoring_error",
		).
		From(advertiserScoresTable)
}

func (r *advertiserScoreRepository) scanScore(rows *sql.Rows) (*domain.ScoredAdvertiser, error) {
	adv := &domain.ScoredAdvertiser{}

	var domains pq.StringArray
	var dominantDest, gateReason, clusterLabel string
	var moneyJSON, urgencyJSON, fitJSON string

	if err := rows.Scan(
		&adv.Profile.AdvertiserID,
		&adv.Profile.AdvertiserName,
		&adv.Profile.PageCategory,
		&adv.Profile.TotalAds,
		&adv.Profile.ActiveAds,
		&adv.Profile.ShareMessage,
		&adv.Profile.ShareCall,
		&adv.Profile.ShareForm,
		&adv.Profile.ShareWeb,
		&adv.Profile.Velocity30d,
		&adv.Profile.AlwaysOnShare,
		&adv.Profile.CreativeRatio,
		&adv.Profile.DominantCTA,
		&dominantDest,
		&domains,
		&adv.Gate.Passed,
		&gateReason,
		&adv.Money.Total,
		&moneyJSON,
		&adv.Urgency.Total,
		&urgencyJSON,
		&adv.Fit.Total,
		&fitJSON,
		&clusterLabel,
		&adv.Cluster.MultiFunnel,
		&adv.Cluster.JunkRisk,
		&adv.Cluster.TotalScore,
		&adv.Rank,
		&adv.ScoringError,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear score: %w", err)
	}

	adv.Profile.Domains = domains
	adv.Profile.DominantDestination = domain.DestinationType(dominantDest)
	adv.Gate.Reason = domain.GateReason(gateReason)
	adv.Cluster.Label = domain.ClusterLabel(clusterLabel)

	if err := json.Unmarshal([]byte(moneyJSON), &adv.Money.Breakdown); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(urgencyJSON), &adv.Urgency.Breakdown); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(fitJSON), &adv.Fit.Breakdown); err != nil {
		return nil, err
	}

	return adv, nil
}
