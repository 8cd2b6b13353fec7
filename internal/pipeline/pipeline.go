// Package pipeline orquestra o fluxo completo de classificação e pontuação:
// agregação, gate conversacional, três scorers, cluster e ranking. Todas as
// etapas são funções puras sobre registros em memória; a orquestração só
// acrescenta paralelismo por anunciante e recuperação de pânico.
package pipeline

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/pipeline/aggregator"
	"github.com/vfg2006/lead-radar-api/internal/pipeline/cluster"
	"github.com/vfg2006/lead-radar-api/internal/pipeline/gate"
	"github.com/vfg2006/lead-radar-api/internal/pipeline/scoring"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

// Limiares dos invariantes brandos de qualidade de dados; violação gera
// warning pós-execução, nunca aborta o lote
const (
	uncategorizedShareCeiling = 0.30
	junkRiskTopSlice          = 20
)

const defaultWorkers = 4

// Result é a saída de uma execução completa do lote
type Result struct {
	Advertisers        []*domain.ScoredAdvertiser
	TotalAds           int
	PassedGate         int
	UncategorizedShare float64
	JunkRiskInTop20    int
}

type Pipeline struct {
	aggregator *aggregator.Aggregator
	gate       *gate.Gate
	money      *scoring.MoneyScorer
	urgency    *scoring.UrgencyScorer
	fit        *scoring.FitScorer
	clusterer  *cluster.Clusterer
	workers    int
}

type Option func(*options)

type options struct {
	clock   func() time.Time
	workers int
}

// WithClock injeta o relógio usado nas métricas de data (testes)
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithWorkers define o número de workers de pontuação por anunciante
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

func New(tax *taxonomy.Config, opts ...Option) *Pipeline {
	o := &options{
		clock:   time.Now,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Pipeline{
		aggregator: aggregator.New(tax, o.clock),
		gate:       gate.New(tax),
		money:      scoring.NewMoneyScorer(),
		urgency:    scoring.NewUrgencyScorer(tax),
		fit:        scoring.NewFitScorer(tax),
		clusterer:  cluster.New(tax),
		workers:    o.workers,
	}
}

// Run executa o pipeline sobre o lote completo de anúncios. Linha sem id de
// anunciante é fatal para o lote (não há como agregar); qualquer pânico ao
// pontuar um único anunciante é recuperado e o lote continua.
func (p *Pipeline) Run(ads []domain.AdRecord) (*Result, error) {
	for i, ad := range ads {
		if ad.AdvertiserID == "" {
			return nil, errors.Errorf("linha %d sem advertiser_id: impossível agregar o lote", i)
		}
	}

	profiles := p.aggregator.Aggregate(ads)

	// O trabalho por anunciante é embaraçosamente paralelo: cada registro
	// depende só do próprio perfil mais as tabelas imutáveis
	scored := make([]*domain.ScoredAdvertiser, len(profiles))

	indexes := make(chan int)
	wg := sync.WaitGroup{}

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				scored[i] = p.scoreOne(profiles[i])
			}
		}()
	}

	for i := range profiles {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	rank(scored)

	result := &Result{
		Advertisers: scored,
		TotalAds:    len(ads),
	}

	uncategorized := 0
	for _, adv := range scored {
		if adv.Gate.Passed {
			result.PassedGate++
		}
		if adv.Cluster.Label == domain.ClusterUncategorized {
			uncategorized++
		}
	}

	if len(scored) > 0 {
		result.UncategorizedShare = float64(uncategorized) / float64(len(scored))
	}

	top := len(scored)
	if top > junkRiskTopSlice {
		top = junkRiskTopSlice
	}
	for _, adv := range scored[:top] {
		if adv.Cluster.JunkRisk {
			result.JunkRiskInTop20++
		}
	}

	p.reportInvariants(result)

	return result, nil
}

// scoreOne roda gate, scorers e cluster para um único anunciante, com
// recuperação de pânico: um registro ruim nunca derruba a execução
func (p *Pipeline) scoreOne(profile *domain.AdvertiserProfile) (adv *domain.ScoredAdvertiser) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"advertiser_id": profile.AdvertiserID,
				"panic":         r,
			}).Error("Pânico ao pontuar anunciante; emitindo com scores zerados")

			adv = &domain.ScoredAdvertiser{
				Profile:      *profile,
				Cluster:      domain.ClusterAssignment{Label: domain.ClusterUncategorized},
				ScoringError: fmt.Sprintf("scoring_error: %v", r),
			}
		}
	}()

	verdict := p.gate.Evaluate(profile)
	money := p.money.Score(profile)
	urgency := p.urgency.Score(profile)
	fit := p.fit.Score(profile)
	assignment := p.clusterer.Assign(profile, money, urgency, fit)

	return &domain.ScoredAdvertiser{
		Profile: *profile,
		Gate:    verdict,
		Money:   money,
		Urgency: urgency,
		Fit:     fit,
		Cluster: assignment,
	}
}

// rank ordena por total_score decrescente com desempate por id do
// anunciante (determinismo) e atribui o rank 1-based
func rank(scored []*domain.ScoredAdvertiser) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Cluster.TotalScore != scored[j].Cluster.TotalScore {
			return scored[i].Cluster.TotalScore > scored[j].Cluster.TotalScore
		}
		return scored[i].Profile.AdvertiserID < scored[j].Profile.AdvertiserID
	})

	for i, adv := range scored {
		adv.Rank = i + 1
	}
}

// reportInvariants loga as violações dos invariantes brandos; são sinais de
// qualidade de dados, não bugs de corretude
func (p *Pipeline) reportInvariants(result *Result) {
	logrus.WithFields(logrus.Fields{
		"total_advertisers":   len(result.Advertisers),
		"passed_gate":         result.PassedGate,
		"uncategorized_share": result.UncategorizedShare,
		"junk_risk_in_top20":  result.JunkRiskInTop20,
	}).Info("Execução do pipeline concluída")

	if result.UncategorizedShare >= uncategorizedShareCeiling {
		logrus.WithField("uncategorized_share", result.UncategorizedShare).
			Warn("Share de anunciantes sem cluster acima de 30%; revisar taxonomias")
	}

	if result.JunkRiskInTop20 > 0 {
		logrus.WithField("junk_risk_in_top20", result.JunkRiskInTop20).
			Warn("Anunciantes com junk_risk no top-20 do ranking")
	}
}
