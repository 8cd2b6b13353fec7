package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

func TestCsvScoreWriter_Write(t *testing.T) {
	writer := NewScoreWriter()
	outPath := filepath.Join(t.TempDir(), "ranking.csv")

	advertisers := []*domain.ScoredAdvertiser{
		{
			Profile: domain.AdvertiserProfile{
				AdvertiserID:        "adv-1",
				AdvertiserName:      "Acme Realty",
				PageCategory:        "Real Estate",
				TotalAds:            4,
				ActiveAds:           3,
				ShareMessage:        0.5,
				DominantCTA:         "WHATSAPP_MESSAGE",
				DominantDestination: domain.DestinationMessage,
			},
			Gate:    domain.GateVerdict{Passed: true, Reason: domain.GateReasonMessage},
			Money:   domain.NewScoreRecord(map[string]int{"volume_anuncios": 9}),
			Urgency: domain.NewScoreRecord(map[string]int{"destino_mensagem": 10}),
			Fit:     domain.NewScoreRecord(map[string]int{"perguntas": 5}),
			Cluster: domain.ClusterAssignment{
				Label:      domain.ClusterMessageFirst,
				TotalScore: 49.1,
			},
			Rank: 1,
		},
	}

	err := writer.Write(outPath, advertisers)
	assert.NoError(t, err)

	file, err := os.Open(outPath)
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	header := rows[0]
	assert.Equal(t, "rank", header[0])
	assert.Equal(t, "advertiser_id", header[1])
	assert.Equal(t, "scoring_error", header[len(header)-1])

	row := rows[1]
	assert.Len(t, row, len(header))
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "adv-1", row[1])
	assert.Equal(t, "49.1", row[4])
	assert.Equal(t, "message_first", row[5])
	assert.Equal(t, "MESSAGE", row[9])
	assert.Equal(t, `{"volume_anuncios":9}`, row[11])
	assert.Equal(t, "0.5000", row[18])
	assert.Equal(t, "", row[len(row)-1])
}

func TestCsvScoreWriter_Write_RankingVazioSoTemCabecalho(t *testing.T) {
	writer := NewScoreWriter()
	outPath := filepath.Join(t.TempDir(), "ranking.csv")

	err := writer.Write(outPath, nil)
	assert.NoError(t, err)

	file, err := os.Open(outPath)
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
