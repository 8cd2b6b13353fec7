package scoring

import (
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

// Componentes do score Money
const (
	MoneyAdVolume   = "volume_anuncios"
	MoneyAlwaysOn   = "always_on"
	MoneyVelocity   = "velocidade"
	MoneyPopularity = "popularidade"
)

// Tetos por componente; a soma dos tetos é exatamente 50. O componente
// always-on pesa tanto quanto o de volume de propósito: gasto sustentado é
// sinal mais forte de disposição de pagar do que volume em rajada.
const (
	moneyAdVolumeCap   = 15
	moneyAlwaysOnCap   = 15
	moneyVelocityCap   = 10
	moneyPopularityCap = 10
)

// MoneyScorer pontua a capacidade de pagamento do anunciante a partir do
// comportamento de investimento em anúncios
type MoneyScorer struct{}

func NewMoneyScorer() *MoneyScorer {
	return &MoneyScorer{}
}

// Score devolve o total [0,50] e o detalhamento por componente
func (s *MoneyScorer) Score(p *domain.AdvertiserProfile) domain.ScoreRecord {
	breakdown := map[string]int{
		MoneyAdVolume:   capPoints(log2Points(float64(p.ActiveAds), 3), moneyAdVolumeCap),
		MoneyAlwaysOn:   capPoints(linearPoints(p.AlwaysOnShare, moneyAlwaysOnCap), moneyAlwaysOnCap),
		MoneyVelocity:   capPoints(log2Points(float64(p.Velocity30d), 2.5), moneyVelocityCap),
		MoneyPopularity: capPoints(log10Points(float64(p.PagePopularity), 3), moneyPopularityCap),
	}

	return domain.NewScoreRecord(breakdown)
}
