// Package aggregator agrupa os anúncios por anunciante e reduz cada grupo a
// um único registro comportamental (AdvertiserProfile).
package aggregator

import (
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/pipeline/classifier"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

const (
	// Anúncio no ar há 21 dias ou mais conta como "always-on"
	alwaysOnThreshold = 21 * 24 * time.Hour

	// Janela da métrica de velocidade de novos anúncios
	velocityWindow = 30 * 24 * time.Hour

	// Limite do texto concatenado por anunciante; usado só para casamento
	// de padrões, nunca re-parseado
	combinedTextLimit = 20000

	// Limite de URLs de saída distintas guardadas por anunciante
	outboundURLLimit = 100
)

type Aggregator struct {
	classifier *classifier.Classifier
	now        func() time.Time
}

// New cria o agregador. O relógio é injetável para os testes; em produção
// passe time.Now.
func New(tax *taxonomy.Config, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}

	return &Aggregator{
		classifier: classifier.New(tax),
		now:        now,
	}
}

// grupo acumula os anúncios de um anunciante na ordem em que aparecem
type group struct {
	ads   []domain.AdRecord
	order int
}

// Aggregate produz um AdvertiserProfile por anunciante distinto presente na
// entrada, na ordem de primeira ocorrência. Grupos vazios não existem por
// construção: um grupo só nasce quando o primeiro anúncio dele é visto.
func (a *Aggregator) Aggregate(ads []domain.AdRecord) []*domain.AdvertiserProfile {
	groups := make(map[string]*group)
	ordered := make([]string, 0)

	for _, ad := range ads {
		g, exists := groups[ad.AdvertiserID]
		if !exists {
			g = &group{order: len(ordered)}
			groups[ad.AdvertiserID] = g
			ordered = append(ordered, ad.AdvertiserID)
		}
		g.ads = append(g.ads, ad)
	}

	profiles := make([]*domain.AdvertiserProfile, 0, len(ordered))
	for _, advertiserID := range ordered {
		profiles = append(profiles, a.reduce(advertiserID, groups[advertiserID].ads))
	}

	logrus.WithFields(logrus.Fields{
		"total_ads":         len(ads),
		"total_advertisers": len(profiles),
	}).Info("Agregação de anúncios por anunciante concluída")

	return profiles
}

// reduce calcula as métricas comportamentais de um grupo não-vazio
func (a *Aggregator) reduce(advertiserID string, ads []domain.AdRecord) *domain.AdvertiserProfile {
	now := a.now()
	total := len(ads)

	profile := &domain.AdvertiserProfile{
		AdvertiserID:   advertiserID,
		AdvertiserName: ads[0].AdvertiserName,
		PageCategory:   ads[0].AdvertiserCategory,
		TotalAds:       total,
	}

	destCounter := newModeCounter()
	ctaCounter := newModeCounter()
	fingerprints := make(map[uint64]struct{})
	platformAds := make(map[string]int)
	domainsSeen := make(map[string]struct{})
	domains := make([]string, 0)
	urlsSeen := make(map[string]struct{})
	urls := make([]string, 0)

	destCounts := map[domain.DestinationType]int{}
	alwaysOn := 0
	velocity := 0

	var combined strings.Builder

	for _, ad := range ads {
		dest := a.classifier.Classify(ad.CTAType, ad.DestinationURL, ad.Platforms)
		destCounts[dest]++
		destCounter.observe(string(dest))

		if ad.CTAType != "" {
			ctaCounter.observe(strings.ToUpper(ad.CTAType))
		}

		if ad.Active {
			profile.ActiveAds++
		}

		if ad.BodyText != "" {
			fingerprints[taxonomy.Fingerprint(ad.BodyText)] = struct{}{}

			if combined.Len() < combinedTextLimit {
				body := ad.BodyText + "\n"
				if remaining := combinedTextLimit - combined.Len(); len(body) > remaining {
					body = body[:remaining]
				}
				combined.WriteString(body)
			}
		}

		// Anúncios com datas não-mensuráveis contribuem zero para as
		// métricas de data, mas continuam contados no total
		if duration, ok := ad.LiveDuration(now); ok && duration >= alwaysOnThreshold {
			alwaysOn++
		}

		if ad.StartDate != nil && !ad.StartDate.IsZero() &&
			!ad.StartDate.After(now) && now.Sub(*ad.StartDate) <= velocityWindow {
			velocity++
		}

		seenInAd := make(map[string]struct{})
		for _, platform := range ad.Platforms {
			p := strings.ToUpper(strings.TrimSpace(platform))
			if p == "" {
				continue
			}
			if _, dup := seenInAd[p]; dup {
				continue
			}
			seenInAd[p] = struct{}{}
			platformAds[p]++
		}

		if host := extractDomain(ad.DestinationURL); host != "" {
			if _, dup := domainsSeen[host]; !dup {
				domainsSeen[host] = struct{}{}
				domains = append(domains, host)
			}
		}

		if ad.DestinationURL != "" && len(urls) < outboundURLLimit {
			if _, dup := urlsSeen[ad.DestinationURL]; !dup {
				urlsSeen[ad.DestinationURL] = struct{}{}
				urls = append(urls, ad.DestinationURL)
			}
		}

		if ad.PagePopularity > profile.PagePopularity {
			profile.PagePopularity = ad.PagePopularity
		}
	}

	// Shares sempre recalculados das contagens brutas
	ftotal := float64(total)
	profile.ShareMessage = float64(destCounts[domain.DestinationMessage]) / ftotal
	profile.ShareCall = float64(destCounts[domain.DestinationCall]) / ftotal
	profile.ShareForm = float64(destCounts[domain.DestinationForm]) / ftotal
	profile.ShareWeb = float64(destCounts[domain.DestinationWeb]) / ftotal

	profile.Velocity30d = velocity
	profile.AlwaysOnShare = float64(alwaysOn) / ftotal
	profile.DistinctCreative = len(fingerprints)
	profile.CreativeRatio = float64(len(fingerprints)) / ftotal

	// Moda com desempate determinístico por primeira ocorrência no lote
	profile.DominantDestination = domain.DestinationType(destCounter.mode())
	profile.DominantCTA = ctaCounter.mode()
	profile.DistinctDestTypes = destCounter.distinct()
	profile.DistinctCTATypes = ctaCounter.distinct()

	profile.CombinedText = combined.String()

	profile.Domains = domains
	profile.OutboundURLs = urls

	profile.PlatformShare = make(map[string]float64, len(platformAds))
	for platform, count := range platformAds {
		profile.PlatformShare[platform] = float64(count) / ftotal
	}

	return profile
}

// modeCounter calcula a moda de uma sequência com desempate pela ordem de
// primeira ocorrência
type modeCounter struct {
	counts map[string]int
	first  map[string]int
	seen   int
}

func newModeCounter() *modeCounter {
	return &modeCounter{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
}

func (m *modeCounter) observe(value string) {
	if _, exists := m.first[value]; !exists {
		m.first[value] = m.seen
	}
	m.seen++
	m.counts[value]++
}

func (m *modeCounter) mode() string {
	best := ""
	bestCount := -1
	bestFirst := -1

	for value, count := range m.counts {
		if count > bestCount || (count == bestCount && m.first[value] < bestFirst) {
			best = value
			bestCount = count
			bestFirst = m.first[value]
		}
	}

	return best
}

func (m *modeCounter) distinct() int {
	return len(m.counts)
}

// extractDomain extrai o host de uma URL de destino; URLs sem host (deep
// links tel:, esquemas inválidos) não entram no conjunto de domínios
func extractDomain(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(parsed.Host, "www."))
}
