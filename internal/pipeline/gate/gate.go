// Package gate implementa o filtro de necessidade conversacional: decide se
// o comportamento de anúncios de um anunciante indica disposição real de
// conversar com um humano antes da venda.
package gate

import (
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

// Limiares de share usados pelas regras de sinal mínimo
const (
	messageShareFloor       = 0.10
	callShareFloor          = 0.10
	formShareWithFollowUp   = 0.20
	formShareUnconditional  = 0.40
	priceDominatedThreshold = 3
)

type Gate struct {
	tax   *taxonomy.Config
	rules []rule
}

// signals são os sinais textuais do anunciante, computados uma única vez
// por avaliação
type signals struct {
	profile      *domain.AdvertiserProfile
	priceMatches int
	consultative bool
	followUp     bool
	qualifying   bool
}

// rule é um par (predicado → veredito); a cascata é avaliada em ordem e a
// primeira regra que casa vence
type rule struct {
	name string
	eval func(sig signals) *domain.GateVerdict
}

func New(tax *taxonomy.Config) *Gate {
	g := &Gate{tax: tax}

	// A ordem declara a precedência do gate e não pode ser trocada
	g.rules = []rule{
		{name: "transactional_drop", eval: g.transactionalDrop},
		{name: "minimum_signal", eval: g.minimumSignal},
		{name: "web_consult", eval: g.webConsult},
		{name: "rescue", eval: g.rescue},
	}

	return g
}

// Evaluate decide a admissão do anunciante com exatamente um código de
// motivo. Função pura do registro mais as tabelas estáticas.
func (g *Gate) Evaluate(profile *domain.AdvertiserProfile) domain.GateVerdict {
	sig := signals{
		profile:      profile,
		priceMatches: g.tax.PriceDiscount.CountDistinct(profile.CombinedText),
		consultative: g.tax.Consultative.MatchAny(profile.CombinedText),
		followUp:     g.tax.FollowUp.MatchAny(profile.CombinedText),
		qualifying:   g.tax.Qualification.MatchAny(profile.CombinedText),
	}

	for _, r := range g.rules {
		if verdict := r.eval(sig); verdict != nil {
			return *verdict
		}
	}

	return domain.GateVerdict{Passed: false, Reason: domain.GateReasonNoSignalDrop}
}

// transactionalDrop derruba anunciantes com comportamento de venda direta:
// CTA transacional com destino/copy transacional, ou copy dominada por
// preço/desconto sem nenhum canal conversacional, sempre na ausência de
// linguagem consultiva.
func (g *Gate) transactionalDrop(sig signals) *domain.GateVerdict {
	if sig.consultative {
		return nil
	}

	priceDominated := sig.priceMatches >= priceDominatedThreshold

	if g.tax.TransactionalCTAs.Has(sig.profile.DominantCTA) &&
		(g.transactionalDestination(sig.profile) || priceDominated) {
		return &domain.GateVerdict{Passed: false, Reason: domain.GateReasonTransactionalDrop}
	}

	// Independente do CTA: copy dominada por preço sem nenhum share de
	// mensagem ou ligação
	if priceDominated && sig.profile.ShareMessage == 0 && sig.profile.ShareCall == 0 {
		return &domain.GateVerdict{Passed: false, Reason: domain.GateReasonTransactionalDrop}
	}

	return nil
}

// minimumSignal admite anunciantes com sinal conversacional direto:
// MESSAGE, depois CALL, depois FORM (com exigência de linguagem de
// follow-up no limiar mais baixo).
func (g *Gate) minimumSignal(sig signals) *domain.GateVerdict {
	p := sig.profile

	if p.DominantDestination == domain.DestinationMessage || p.ShareMessage >= messageShareFloor {
		return &domain.GateVerdict{Passed: true, Reason: domain.GateReasonMessage}
	}

	if p.DominantDestination == domain.DestinationCall || p.ShareCall >= callShareFloor {
		return &domain.GateVerdict{Passed: true, Reason: domain.GateReasonCall}
	}

	if (p.ShareForm >= formShareWithFollowUp && sig.followUp) || p.ShareForm >= formShareUnconditional {
		return &domain.GateVerdict{Passed: true, Reason: domain.GateReasonForm}
	}

	return nil
}

// webConsult é o caminho estrito para anunciantes 100% web: destino WEB
// dominante, CTA de intenção de lead, linguagem consultiva, destino
// não-transacional e presença de linguagem de follow-up ou qualificação.
func (g *Gate) webConsult(sig signals) *domain.GateVerdict {
	p := sig.profile

	if p.DominantDestination == domain.DestinationWeb &&
		g.tax.LeadIntentCTAs.Has(p.DominantCTA) &&
		sig.consultative &&
		!g.transactionalDestination(p) &&
		(sig.followUp || sig.qualifying) {
		return &domain.GateVerdict{Passed: true, Reason: domain.GateReasonWebConsult}
	}

	return nil
}

// rescue resgata negócios de setores regulados pelo nome do anunciante.
// O casamento é restrito ao campo de nome (nunca à copy) para não
// resgatar negócios que apenas citam essas profissões no conteúdo.
func (g *Gate) rescue(sig signals) *domain.GateVerdict {
	p := sig.profile

	if g.tax.RegulatedName.MatchAny(p.AdvertiserName) &&
		!g.tax.TransactionalCTAs.Has(p.DominantCTA) &&
		sig.priceMatches < priceDominatedThreshold {
		return &domain.GateVerdict{Passed: true, Reason: domain.GateReasonRescued}
	}

	return nil
}

// transactionalDestination verifica se o destino observado do anunciante é
// transacional, por domínio ou por caminho de URL
func (g *Gate) transactionalDestination(p *domain.AdvertiserProfile) bool {
	for _, d := range p.Domains {
		if g.tax.TransactionalDom.MatchAnyRaw(d) {
			return true
		}
	}

	for _, u := range p.OutboundURLs {
		if g.tax.TransactionalURL.MatchAnyRaw(u) {
			return true
		}
	}

	return false
}
