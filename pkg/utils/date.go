package utils

import (
	"fmt"
	"strconv"
	"time"
)

// Formatos aceitos nos datasets exportados pelo ator de scraping
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate interpreta as datas do dataset: data simples, RFC3339 ou epoch
// em segundos. String vazia não é erro, apenas ausência de valor.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			return &parsed, nil
		}
	}

	if epoch, err := strconv.ParseInt(dateStr, 10, 64); err == nil && epoch > 0 {
		parsed := time.Unix(epoch, 0).UTC()
		return &parsed, nil
	}

	return nil, fmt.Errorf("data em formato desconhecido: %q", dateStr)
}
