package scoring

import (
	"strings"

	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

// Componentes explícitos do Fit (pré-qualificação presente na copy)
const (
	FitQuestions     = "perguntas"
	FitQualification = "qualificacao"
	FitMultiChannel  = "multicanal"
)

// Componentes implícitos do Fit (qualificação esperada dentro da conversa)
const (
	FitEntryNoPricing = "entrada_sem_preco"
	FitGenericCTA     = "cta_generico_sem_qualificacao"
	FitAdvisorTalk    = "linguagem_consultiva"
	FitBreadth        = "amplitude_servico"
	FitRegulated      = "setor_regulado"
)

// ExplicitComponents e ImplicitComponents particionam o breakdown do Fit;
// os subtotais somam no máximo 30 e 20 respectivamente
var (
	ExplicitComponents = []string{FitQuestions, FitQualification, FitMultiChannel}
	ImplicitComponents = []string{FitEntryNoPricing, FitGenericCTA, FitAdvisorTalk, FitBreadth, FitRegulated}
)

const (
	fitQuestionsCap     = 10
	fitQualificationCap = 10
	fitMultiChannelCap  = 10
	fitAdvisorCap       = 4
	fitBreadthCap       = 2
)

// FitScorer pontua o encaixe conversacional. O sub-score implícito existe
// porque verticais que qualificam o lead durante a conversa (imobiliárias,
// corretoras) ficam perto de zero nos sinais explícitos e ainda assim
// precisam pontuar de forma competitiva.
type FitScorer struct {
	tax *taxonomy.Config
}

func NewFitScorer(tax *taxonomy.Config) *FitScorer {
	return &FitScorer{tax: tax}
}

// Score devolve o total [0,50] e o detalhamento por componente
func (s *FitScorer) Score(p *domain.AdvertiserProfile) domain.ScoreRecord {
	breakdown := map[string]int{}

	// --- explícito (teto 30) ---

	questions := strings.Count(p.CombinedText, "?")
	breakdown[FitQuestions] = capPoints(questions*5, fitQuestionsCap)

	qualMatches := s.tax.Qualification.CountDistinct(p.CombinedText)
	breakdown[FitQualification] = capPoints(qualMatches*5, fitQualificationCap)

	multiChannel := 0
	if p.DistinctCTATypes >= 2 {
		multiChannel += 5
	}
	if p.DistinctDestTypes >= 2 {
		multiChannel += 5
	}
	breakdown[FitMultiChannel] = capPoints(multiChannel, fitMultiChannelCap)

	// --- implícito (teto 20) ---

	priceMatches := s.tax.PriceDiscount.CountDistinct(p.CombinedText)

	breakdown[FitEntryNoPricing] = 0
	if conversationalEntry(p.DominantDestination) && priceMatches == 0 {
		breakdown[FitEntryNoPricing] = 5
	}

	breakdown[FitGenericCTA] = 0
	if s.tax.GenericCTAs.Has(p.DominantCTA) && qualMatches == 0 {
		breakdown[FitGenericCTA] = 4
	}

	advisorMatches := s.tax.Consultative.CountDistinct(p.CombinedText)
	breakdown[FitAdvisorTalk] = capPoints(advisorMatches*2, fitAdvisorCap)

	breadthMatches := s.tax.ServiceBreadth.CountDistinct(p.CombinedText)
	breakdown[FitBreadth] = capPoints(breadthMatches, fitBreadthCap)

	// Ao contrário do resgate do gate, o bônus de setor regulado também
	// aceita linguagem regulada na copy
	breakdown[FitRegulated] = 0
	if s.tax.RegulatedCategory.MatchAny(p.PageCategory) ||
		s.tax.RegulatedName.MatchAny(p.AdvertiserName) ||
		s.tax.RegulatedName.MatchAny(p.CombinedText) {
		breakdown[FitRegulated] = 5
	}

	return domain.NewScoreRecord(breakdown)
}

// Subtotal soma os componentes informados do breakdown (usado para inspecionar
// os sub-scores explícito e implícito)
func Subtotal(record domain.ScoreRecord, components []string) int {
	total := 0
	for _, c := range components {
		total += record.Breakdown[c]
	}
	return total
}

// conversationalEntry informa se o destino dominante abre conversa
func conversationalEntry(dest domain.DestinationType) bool {
	return dest == domain.DestinationMessage ||
		dest == domain.DestinationCall ||
		dest == domain.DestinationForm
}
