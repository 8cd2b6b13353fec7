package ingest

import (
	"encoding/csv"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ScoreWriter interface {
	Write(path string, advertisers []*domain.ScoredAdvertiser) error
}

type csvScoreWriter struct{}

func NewScoreWriter() ScoreWriter {
	return &csvScoreWriter{}
}

// Write grava o ranking completo, uma linha por anunciante, com os
// detalhamentos de score serializados em JSON
func (w *csvScoreWriter) Write(path string, advertisers []*domain.ScoredAdvertiser) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "erro ao criar o arquivo de saída")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"rank",
		"advertiser_id",
		"advertiser_name",
		"page_category",
		"total_score",
		"cluster_label",
		"multi_funnel",
		"junk_risk",
		"gate_passed",
		"gate_reason",
		"money_total",
		"money_breakdown",
		"urgency_total",
		"urgency_breakdown",
		"fit_total",
		"fit_breakdown",
		"total_ads",
		"active_ads",
		"share_message",
		"share_call",
		"share_form",
		"share_web",
		"velocity_30d",
		"always_on_share",
		"dominant_cta",
		"dominant_destination",
		"scoring_error",
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho de saída")
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

		row := []string{
			strconv.Itoa(adv.Rank),
			adv.Profile.AdvertiserID,
			adv.Profile.AdvertiserName,
			adv.Profile.PageCategory,
			strconv.FormatFloat(adv.Cluster.TotalScore, 'f', 1, 64),
			string(adv.Cluster.Label),
			strconv.FormatBool(adv.Cluster.MultiFunnel),
			strconv.FormatBool(adv.Cluster.JunkRisk),
			strconv.FormatBool(adv.Gate.Passed),
			string(adv.Gate.Reason),
			strconv.Itoa(adv.Money.Total),
			string(moneyJSON),
			strconv.Itoa(adv.Urgency.Total),
			string(urgencyJSON),
			strconv.Itoa(adv.Fit.Total),
			string(fitJSON),
			strconv.Itoa(adv.Profile.TotalAds),
			strconv.Itoa(adv.Profile.ActiveAds),
			formatShare(adv.Profile.ShareMessage),
			formatShare(adv.Profile.ShareCall),
			formatShare(adv.Profile.ShareForm),
			formatShare(adv.Profile.ShareWeb),
			strconv.Itoa(adv.Profile.Velocity30d),
			formatShare(adv.Profile.AlwaysOnShare),
			adv.Profile.DominantCTA,
			string(adv.Profile.DominantDestination),
			adv.ScoringError,
		}

		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "erro ao escrever a linha do anunciante %s", adv.Profile.AdvertiserID)
		}
	}

	return nil
}

func formatShare(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}
