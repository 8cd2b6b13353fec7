package domain

import (
	"time"
)

// DestinationType é o canal de conversão inferido de um anúncio
type DestinationType string

const (
	DestinationMessage DestinationType = "MESSAGE"
	DestinationCall    DestinationType = "CALL"
	DestinationForm    DestinationType = "FORM"
	DestinationWeb     DestinationType = "WEB"
)

// AdRecord representa uma linha do dataset bruto do ator de scraping,
// um registro por criativo/veiculação. Imutável depois da ingestão.
type AdRecord struct {
	AdvertiserID       string     `json:"advertiser_id"`
	AdvertiserName     string     `json:"advertiser_name"`
	AdvertiserCategory string     `json:"advertiser_category"`
	AdID               string     `json:"ad_id"`
	CTAType            string     `json:"cta_type"`
	DestinationURL     string     `json:"destination_url"`
	Platforms          []string   `json:"platforms"`
	BodyText           string     `json:"body_text"`
	Active             bool       `json:"active"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	PagePopularity     int64      `json:"page_popularity"`
}

// LiveDuration calcula há quanto tempo o anúncio está (ou esteve) no ar.
// Anúncios sem data de início não têm duração mensurável.
func (a *AdRecord) LiveDuration(now time.Time) (time.Duration, bool) {
	if a.StartDate == nil || a.StartDate.IsZero() {
		return 0, false
	}

	end := now
	if !a.Active && a.EndDate != nil && !a.EndDate.IsZero() {
		end = *a.EndDate
	}

	if end.Before(*a.StartDate) {
		return 0, false
	}

	return end.Sub(*a.StartDate), true
}
