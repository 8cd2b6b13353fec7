package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

func loadTaxonomies(t *testing.T) *taxonomy.Config {
	t.Helper()

	tax, err := taxonomy.Load("../../taxonomies")
	if err != nil {
		t.Fatalf("erro ao carregar taxonomias de teste: %v", err)
	}

	return tax
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestPipeline_Run_LoteMisto(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := New(loadTaxonomies(t), WithClock(func() time.Time { return now }), WithWorkers(2))

	ads := []domain.AdRecord{
		// Imobiliária conversacional: deve passar no gate e liderar o
		// ranking
		{
			AdvertiserID:   "adv-realty",
			AdvertiserName: "Acme Realty",
			AdID:           "ad-1",
			CTAType:        "WHATSAPP_MESSAGE",
			DestinationURL: "https://wa.me/5215551234567",
			Platforms:      []string{"FACEBOOK", "INSTAGRAM"},
			BodyText:       "Agenda tu visita hoy. Free consultation with our experts.",
			Active:         true,
			StartDate:      timePtr(now.Add(-45 * 24 * time.Hour)),
			PagePopularity: 5000,
		},
		{
			AdvertiserID:   "adv-realty",
			AdvertiserName: "Acme Realty",
			AdID:           "ad-2",
			CTAType:        "WHATSAPP_MESSAGE",
			DestinationURL: "https://wa.me/5215551234567",
			Platforms:      []string{"FACEBOOK"},
			BodyText:       "Do you qualify for financing? Message us now.",
			Active:         true,
			StartDate:      timePtr(now.Add(-10 * 24 * time.Hour)),
			PagePopularity: 5000,
		},
		// Loja pura: CTA transacional com domínio de marketplace
		{
			AdvertiserID:   "adv-shop",
			AdvertiserName: "Trendy Outlet",
			AdID:           "ad-3",
			CTAType:        "SHOP_NOW",
			DestinationURL: "https://trendy.myshopify.com/collections/sale",
			Platforms:      []string{"FACEBOOK"},
			BodyText:       "Shop now! 20% off everything!",
			Active:         true,
			StartDate:      timePtr(now.Add(-3 * 24 * time.Hour)),
		},
		// Prestador de setor regulado sem canal conversacional: resgatado
		// pelo nome
		{
			AdvertiserID:   "adv-roofing",
			AdvertiserName: "Terra Nova Roofing",
			AdID:           "ad-4",
			CTAType:        "LEARN_MORE",
			DestinationURL: "https://terranovaroofing.com",
			Platforms:      []string{"FACEBOOK"},
			BodyText:       "Serving the valley since 1998.",
			Active:         true,
			StartDate:      timePtr(now.Add(-100 * 24 * time.Hour)),
		},
	}

	result, err := p.Run(ads)
	assert.NoError(t, err)
	assert.Equal(t, 4, result.TotalAds)
	assert.Len(t, result.Advertisers, 3)
	assert.Equal(t, 2, result.PassedGate)

	byID := make(map[string]*domain.ScoredAdvertiser)
	for _, adv := range result.Advertisers {
		byID[adv.Profile.AdvertiserID] = adv
	}

	realty := byID["adv-realty"]
	assert.True(t, realty.Gate.Passed)
	assert.Equal(t, domain.GateReasonMessage, realty.Gate.Reason)
	assert.Equal(t, domain.ClusterMessageFirst, realty.Cluster.Label)
	assert.Greater(t, realty.Cluster.TotalScore, 0.0)
	assert.Empty(t, realty.ScoringError)

	shop := byID["adv-shop"]
	assert.False(t, shop.Gate.Passed)
	assert.Equal(t, domain.GateReasonTransactionalDrop, shop.Gate.Reason)
	assert.True(t, shop.Cluster.JunkRisk)

	roofing := byID["adv-roofing"]
	assert.True(t, roofing.Gate.Passed)
	assert.Equal(t, domain.GateReasonRescued, roofing.Gate.Reason)

	// Ranking denso 1-based na ordem do slice
	for i, adv := range result.Advertisers {
		assert.Equal(t, i+1, adv.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t,
				result.Advertisers[i-1].Cluster.TotalScore,
				adv.Cluster.TotalScore,
			)
		}
	}

	assert.Equal(t, 1, realty.Rank)
}

func TestPipeline_Run_LoteTodoConversacional(t *testing.T) {
	p := New(loadTaxonomies(t), WithWorkers(1))

	ads := []domain.AdRecord{
		{AdvertiserID: "adv-1", AdID: "ad-1", CTAType: "WHATSAPP_MESSAGE"},
		{AdvertiserID: "adv-2", AdID: "ad-2", CTAType: "SEND_MESSAGE"},
		{AdvertiserID: "adv-3", AdID: "ad-3", CTAType: "MESSAGE_PAGE"},
	}

	result, err := p.Run(ads)
	assert.NoError(t, err)
	assert.Len(t, result.Advertisers, 3)
	assert.Equal(t, 3, result.PassedGate)

	// Todo anunciante message-first recebe rótulo; nenhum uncategorized
	assert.InDelta(t, 0.0, result.UncategorizedShare, 1e-9)
	for _, adv := range result.Advertisers {
		assert.Equal(t, domain.ClusterMessageFirst, adv.Cluster.Label)
	}
}

func TestPipeline_Run_LinhaSemAnuncianteAbortaOLote(t *testing.T) {
	p := New(loadTaxonomies(t))

	ads := []domain.AdRecord{
		{AdvertiserID: "adv-1", AdID: "ad-1"},
		{AdvertiserID: "", AdID: "ad-2"},
	}

	result, err := p.Run(ads)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sem advertiser_id")
}

func TestPipeline_Run_DesempateDoRankingPorID(t *testing.T) {
	p := New(loadTaxonomies(t), WithWorkers(1))

	// Dois anunciantes idênticos empatam no score; o desempate é pelo id
	// em ordem crescente
	ads := []domain.AdRecord{
		{AdvertiserID: "adv-B", AdID: "ad-1", CTAType: "WHATSAPP_MESSAGE", BodyText: "Message us"},
		{AdvertiserID: "adv-A", AdID: "ad-2", CTAType: "WHATSAPP_MESSAGE", BodyText: "Message us"},
	}

	result, err := p.Run(ads)
	assert.NoError(t, err)
	assert.Len(t, result.Advertisers, 2)

	assert.Equal(t,
		result.Advertisers[0].Cluster.TotalScore,
		result.Advertisers[1].Cluster.TotalScore,
	)
	assert.Equal(t, "adv-A", result.Advertisers[0].Profile.AdvertiserID)
	assert.Equal(t, "adv-B", result.Advertisers[1].Profile.AdvertiserID)
	assert.Equal(t, 1, result.Advertisers[0].Rank)
	assert.Equal(t, 2, result.Advertisers[1].Rank)
}

func TestPipeline_Run_LoteVazio(t *testing.T) {
	p := New(loadTaxonomies(t))

	result, err := p.Run(nil)
	assert.NoError(t, err)
	assert.Empty(t, result.Advertisers)
	assert.Equal(t, 0, result.TotalAds)
	assert.InDelta(t, 0.0, result.UncategorizedShare, 1e-9)
}
