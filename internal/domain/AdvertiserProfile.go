package domain

// AdvertiserProfile é o registro comportamental de um anunciante, produzido
// pelo agregador a partir de todos os AdRecords com o mesmo advertiser_id.
// Os shares derivados são sempre recalculados das contagens brutas.
type AdvertiserProfile struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser_name"`
	PageCategory   string `json:"page_category"`

	TotalAds         int `json:"total_ads"`
	ActiveAds        int `json:"active_ads"`
	DistinctCreative int `json:"distinct_creatives"`

	ShareMessage float64 `json:"share_message"`
	ShareCall    float64 `json:"share_call"`
	ShareForm    float64 `json:"share_form"`
	ShareWeb     float64 `json:"share_web"`

	Velocity30d    int     `json:"velocity_30d"`
	AlwaysOnShare  float64 `json:"always_on_share"`
	CreativeRatio  float64 `json:"creative_refresh_ratio"`
	PagePopularity int64   `json:"page_popularity"`

	DominantCTA         string          `json:"dominant_cta"`
	DominantDestination DestinationType `json:"dominant_destination"`
	DistinctCTATypes    int             `json:"distinct_cta_types"`
	DistinctDestTypes   int             `json:"distinct_dest_types"`

	// CombinedText é usado apenas para casamento de padrões; nunca é
	// re-parseado em campos estruturados.
	CombinedText string `json:"-"`

	Domains       []string           `json:"domains"`
	OutboundURLs  []string           `json:"-"`
	PlatformShare map[string]float64 `json:"platform_share"`
}

// HasDomain informa se o anunciante anuncia para o domínio dado
func (p *AdvertiserProfile) HasDomain(domain string) bool {
	for _, d := range p.Domains {
		if d == domain {
			return true
		}
	}
	return false
}
