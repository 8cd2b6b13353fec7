// Package domain contém os tipos de transporte do ator de scraping da
// biblioteca de anúncios
package domain

// DatasetItem é um anúncio cru como o ator exporta. Datas chegam como
// string por variar de formato entre versões do ator.
type DatasetItem struct {
	AdArchiveID       string   `json:"ad_archive_id"`
	PageID            string   `json:"page_id"`
	PageName          string   `json:"page_name"`
	PageCategory      string   `json:"page_category"`
	CTAType           string   `json:"cta_type"`
	LinkURL           string   `json:"link_url"`
	PublisherPlatform []string `json:"publisher_platform"`
	BodyText          string   `json:"body_text"`
	IsActive          bool     `json:"is_active"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	PageLikeCount     int64    `json:"page_like_count"`
}
