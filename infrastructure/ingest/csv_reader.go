// Package ingest lê e escreve os datasets tabulares trocados com o ator
// de scraping da biblioteca de anúncios
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/pkg/utils"
)

// Colunas reconhecidas no export do ator. Colunas desconhecidas são
// ignoradas; só a de identificação do anunciante é obrigatória.
const (
	columnAdID          = "ad_id"
	columnAdvertiserID  = "page_id"
	columnName          = "page_name"
	columnCategory      = "page_category"
	columnCTAType       = "cta_type"
	columnLinkURL       = "link_url"
	columnPlatforms     = "publisher_platforms"
	columnBody          = "ad_creative_body"
	columnActive        = "is_active"
	columnStartDate     = "ad_delivery_start_time"
	columnEndDate       = "ad_delivery_stop_time"
	columnPagePopulariy = "page_like_count"
)

type AdReader interface {
	Read(path string) ([]domain.AdRecord, error)
}

type csvAdReader struct{}

func NewAdReader() AdReader {
	return &csvAdReader{}
}

func (r *csvAdReader) Read(path string) ([]domain.AdRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o dataset")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do dataset")
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	if _, ok := columns[columnAdvertiserID]; !ok {
		return nil, errors.Errorf("dataset sem a coluna obrigatória %q", columnAdvertiserID)
	}

	ads := make([]domain.AdRecord, 0)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a linha %d do dataset", line+1)
		}
		line++

		ad, err := r.parseRow(columns, row, line)
		if err != nil {
			return nil, err
		}

		ads = append(ads, ad)
	}

	logrus.WithFields(logrus.Fields{
		"path":      path,
		"total_ads": len(ads),
	}).Info("Dataset de anúncios carregado")

	return ads, nil
}

func (r *csvAdReader) parseRow(columns map[string]int, row []string, line int) (domain.AdRecord, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	advertiserID := cell(columnAdvertiserID)
	if advertiserID == "" {
		return domain.AdRecord{}, errors.Errorf("linha %d sem identificador do anunciante", line)
	}

	ad := domain.AdRecord{
		AdID:               cell(columnAdID),
		AdvertiserID:       advertiserID,
		AdvertiserName:     cell(columnName),
		AdvertiserCategory: cell(columnCategory),
		CTAType:            cell(columnCTAType),
		DestinationURL:     cell(columnLinkURL),
		BodyText:           cell(columnBody),
		Platforms:          splitPlatforms(cell(columnPlatforms)),
	}

	ad.Active = parseBool(cell(columnActive))

	startDate, err := utils.ParseDate(cell(columnStartDate))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"line":          line,
			"advertiser_id": advertiserID,
			"value":         cell(columnStartDate),
		}).Warn("Data de início ilegível, anúncio segue sem a data")
	} else {
		ad.StartDate = startDate
	}

	endDate, err := utils.ParseDate(cell(columnEndDate))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"line":          line,
			"advertiser_id": advertiserID,
			"value":         cell(columnEndDate),
		}).Warn("Data de término ilegível, anúncio segue sem a data")
	} else {
		ad.EndDate = endDate
	}

	if popularity := cell(columnPagePopulariy); popularity != "" {
		parsed, err := strconv.ParseInt(popularity, 10, 64)
		if err == nil && parsed >= 0 {
			ad.PagePopularity = parsed
		}
	}

	return ad, nil
}

// O ator serializa as plataformas como lista separada por vírgula ou
// ponto e vírgula, dependendo da versão
func splitPlatforms(value string) []string {
	if value == "" {
		return nil
	}

	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	})

	platforms := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			platforms = append(platforms, trimmed)
		}
	}

	return platforms
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "active":
		return true
	default:
		return false
	}
}
