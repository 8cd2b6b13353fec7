// Package cluster atribui o rótulo comportamental final, as flags de risco
// e o score composto normalizado de cada anunciante.
package cluster

import (
	"math"

	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

// Pesos do score composto: política de negócio fixa, reproduzida exatamente
// para paridade de saída entre implementações.
const (
	weightMoney   = 0.45
	weightUrgency = 0.35
	weightFit     = 0.20
)

// Limiares da cascata de rótulos. Espelham os do gate de sinal mínimo, mas
// a atribuição é avaliada de forma independente: o rótulo precisa ser
// estável mesmo para anunciantes admitidos via RESCUED ou WEB_CONSULT.
const (
	messageShareFloor      = 0.10
	callShareFloor         = 0.10
	formShareWithFollowUp  = 0.20
	formShareUnconditional = 0.30

	multiFunnelCreatives  = 5
	multiFunnelShareFloor = 0.05
	junkContentThreshold  = 3
)

type Clusterer struct {
	tax *taxonomy.Config
}

func New(tax *taxonomy.Config) *Clusterer {
	return &Clusterer{tax: tax}
}

// Assign produz a atribuição final de cluster do anunciante
func (c *Clusterer) Assign(
	profile *domain.AdvertiserProfile,
	money domain.ScoreRecord,
	urgency domain.ScoreRecord,
	fit domain.ScoreRecord,
) domain.ClusterAssignment {
	return domain.ClusterAssignment{
		Label:       c.label(profile),
		MultiFunnel: c.multiFunnel(profile),
		JunkRisk:    c.junkRisk(profile),
		TotalScore:  compositeScore(money, urgency, fit),
	}
}

// label avalia a cascata priorizada de rótulos; a primeira regra que casa
// vence
func (c *Clusterer) label(p *domain.AdvertiserProfile) domain.ClusterLabel {
	if p.DominantDestination == domain.DestinationMessage || p.ShareMessage >= messageShareFloor {
		return domain.ClusterMessageFirst
	}

	if p.DominantDestination == domain.DestinationCall || p.ShareCall >= callShareFloor {
		return domain.ClusterCallFirst
	}

	followUp := c.tax.FollowUp.MatchAny(p.CombinedText)
	if (p.ShareForm >= formShareWithFollowUp && followUp) || p.ShareForm >= formShareUnconditional {
		return domain.ClusterFormFirst
	}

	// Mesmo teste de quatro condições do caminho web-consult do gate
	if p.DominantDestination == domain.DestinationWeb &&
		c.tax.LeadIntentCTAs.Has(p.DominantCTA) &&
		c.tax.Consultative.MatchAny(p.CombinedText) &&
		!c.transactionalDestination(p) &&
		(followUp || c.tax.Qualification.MatchAny(p.CombinedText)) {
		return domain.ClusterWebConsult
	}

	return domain.ClusterUncategorized
}

// multiFunnel detecta anunciantes operando vários funis ao mesmo tempo:
// muitas variantes de criativo ou pelo menos dois canais conversacionais
// com share relevante
func (c *Clusterer) multiFunnel(p *domain.AdvertiserProfile) bool {
	if p.DistinctCreative >= multiFunnelCreatives {
		return true
	}

	channels := 0
	for _, share := range []float64{p.ShareMessage, p.ShareCall, p.ShareForm} {
		if share > multiFunnelShareFloor {
			channels++
		}
	}

	return channels >= 2
}

// junkRisk sinaliza fazendas de conteúdo e lojas puras: CTA transacional
// apontando para domínio transacional, ou densidade alta de palavras de
// conteúdo/mídia na copy
func (c *Clusterer) junkRisk(p *domain.AdvertiserProfile) bool {
	if c.tax.TransactionalCTAs.Has(p.DominantCTA) && c.transactionalDomains(p) {
		return true
	}

	return c.tax.ContentMedia.CountDistinct(p.CombinedText) >= junkContentThreshold
}

func (c *Clusterer) transactionalDomains(p *domain.AdvertiserProfile) bool {
	for _, d := range p.Domains {
		if c.tax.TransactionalDom.MatchAnyRaw(d) {
			return true
		}
	}
	return false
}

func (c *Clusterer) transactionalDestination(p *domain.AdvertiserProfile) bool {
	if c.transactionalDomains(p) {
		return true
	}

	for _, u := range p.OutboundURLs {
		if c.tax.TransactionalURL.MatchAnyRaw(u) {
			return true
		}
	}

	return false
}

// compositeScore normaliza a combinação ponderada 45/35/20 dos três scores
// para [0,100] com uma casa decimal
func compositeScore(money, urgency, fit domain.ScoreRecord) float64 {
	weighted := weightMoney*float64(money.Total) +
		weightUrgency*float64(urgency.Total) +
		weightFit*float64(fit.Total)

	return math.Round(100*weighted/50*10) / 10
}
