// Package classifier infere o canal de conversão (destino) de um anúncio a
// partir do tipo de CTA, da URL de destino e das plataformas de veiculação.
package classifier

import (
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

// Classifier é uma função pura: não guarda estado entre chamadas além das
// tabelas imutáveis de taxonomia.
type Classifier struct {
	tax *taxonomy.Config
}

func New(tax *taxonomy.Config) *Classifier {
	return &Classifier{tax: tax}
}

// Classify mapeia um anúncio para MESSAGE, CALL, FORM ou WEB.
//
// A ordem de avaliação é fixa e não pode ser reordenada:
//  1. taxonomia MESSAGE, URL de serviço de mensagem ou veiculação
//     exclusivamente em plataforma de mensagem → MESSAGE
//  2. taxonomia CALL ou esquema de telefonia → CALL
//  3. taxonomia FORM ou URL de agendamento/formulário → FORM
//  4. default → WEB
//
// Um CTA presente nas taxonomias MESSAGE e FORM resolve MESSAGE porque a
// regra 1 é avaliada primeiro.
func (c *Classifier) Classify(ctaType, destinationURL string, platforms []string) domain.DestinationType {
	if c.tax.MessageCTAs.Has(ctaType) ||
		c.tax.MessagingURL.MatchAnyRaw(destinationURL) ||
		c.messagingOnlyPlacement(platforms) {
		return domain.DestinationMessage
	}

	if c.tax.CallCTAs.Has(ctaType) || c.tax.TelephonyURL.MatchAnyRaw(destinationURL) {
		return domain.DestinationCall
	}

	if c.tax.FormCTAs.Has(ctaType) || c.tax.FormURL.MatchAnyRaw(destinationURL) {
		return domain.DestinationForm
	}

	return domain.DestinationWeb
}

// messagingOnlyPlacement verifica se o conjunto de plataformas é composto
// exclusivamente por plataformas de mensagem
func (c *Classifier) messagingOnlyPlacement(platforms []string) bool {
	if len(platforms) == 0 {
		return false
	}

	for _, platform := range platforms {
		if !c.tax.MessagingPlatforms.Has(platform) {
			return false
		}
	}

	return true
}
