package scoring

import (
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

// Componentes do score Urgency
const (
	UrgencyMessageShare = "destino_mensagem"
	UrgencyCallShare    = "destino_ligacao"
	UrgencyFormShare    = "destino_formulario"
	UrgencyImmediacy    = "imediatismo"
)

const (
	urgencyMessageCap   = 15
	urgencyCallCap      = 10
	urgencyFormCap      = 5
	urgencyImmediacyCap = 20
)

// UrgencyScorer pontua a urgência do anunciante a partir dos shares de
// destino conversacional e da densidade de palavras de imediatismo na copy.
// Não há termo de volume de anúncios: um componente de volume aqui
// duplicaria o que Money já pontua.
type UrgencyScorer struct {
	tax *taxonomy.Config
}

func NewUrgencyScorer(tax *taxonomy.Config) *UrgencyScorer {
	return &UrgencyScorer{tax: tax}
}

// Score devolve o total [0,50] e o detalhamento por componente
func (s *UrgencyScorer) Score(p *domain.AdvertiserProfile) domain.ScoreRecord {
	immediacyMatches := s.tax.Immediacy.CountDistinct(p.CombinedText)

	breakdown := map[string]int{
		UrgencyMessageShare: capPoints(linearPoints(p.ShareMessage, 20), urgencyMessageCap),
		UrgencyCallShare:    capPoints(linearPoints(p.ShareCall, 20), urgencyCallCap),
		UrgencyFormShare:    capPoints(linearPoints(p.ShareForm, 10), urgencyFormCap),
		UrgencyImmediacy:    capPoints(immediacyMatches*4, urgencyImmediacyCap),
	}

	return domain.NewScoreRecord(breakdown)
}
