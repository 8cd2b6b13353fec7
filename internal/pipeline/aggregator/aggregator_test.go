package aggregator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-radar-api/internal/domain"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

func loadTaxonomies(t *testing.T) *taxonomy.Config {
	t.Helper()

	tax, err := taxonomy.Load("../../../taxonomies")
	if err != nil {
		t.Fatalf("erro ao carregar taxonomias de teste: %v", err)
	}

	return tax
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestAggregator_Aggregate_MetricasDeUmAnunciante(t *testing.T) {
	// Relógio fixo para que as janelas de always-on e velocidade sejam
	// determinísticas
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	a := New(loadTaxonomies(t), func() time.Time { return now })

	ads := []domain.AdRecord{
		{
			AdvertiserID:   "adv-1",
			AdvertiserName: "Acme Realty",
			AdID:           "ad-1",
			CTAType:        "WHATSAPP_MESSAGE",
			DestinationURL: "https://wa.me/5215551234567",
			Platforms:      []string{"FACEBOOK", "INSTAGRAM"},
			BodyText:       "Agenda tu consulta hoy!",
			Active:         true,
			StartDate:      timePtr(now.Add(-30 * 24 * time.Hour)),
			PagePopularity: 1000,
		},
		{
			AdvertiserID:   "adv-1",
			AdvertiserName: "Acme Realty",
			AdID:           "ad-2",
			CTAType:        "CALL_NOW",
			DestinationURL: "tel:+5215551234567",
			Platforms:      []string{"FACEBOOK"},
			BodyText:       "agenda tu consulta hoy",
			Active:         true,
			StartDate:      timePtr(now.Add(-5 * 24 * time.Hour)),
			PagePopularity: 500,
		},
		{
			AdvertiserID:   "adv-1",
			AdvertiserName: "Acme Realty",
			AdID:           "ad-3",
			CTAType:        "SHOP_NOW",
			DestinationURL: "https://www.example.com/shop",
			Platforms:      []string{"facebook"},
			BodyText:       "Shop now!",
			Active:         false,
			StartDate:      timePtr(now.Add(-60 * 24 * time.Hour)),
			EndDate:        timePtr(now.Add(-50 * 24 * time.Hour)),
		},
		{
			AdvertiserID:   "adv-1",
			AdvertiserName: "Acme Realty",
			AdID:           "ad-4",
			CTAType:        "WHATSAPP_MESSAGE",
			DestinationURL: "",
			Active:         true,
		},
	}

	profiles := a.Aggregate(ads)
	assert.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "adv-1", p.AdvertiserID)
	assert.Equal(t, "Acme Realty", p.AdvertiserName)
	assert.Equal(t, 4, p.TotalAds)
	assert.Equal(t, 3, p.ActiveAds)

	// Dois MESSAGE, um CALL, um WEB (SHOP_NOW não é conversacional)
	assert.InDelta(t, 0.50, p.ShareMessage, 1e-9)
	assert.InDelta(t, 0.25, p.ShareCall, 1e-9)
	assert.InDelta(t, 0.00, p.ShareForm, 1e-9)
	assert.InDelta(t, 0.25, p.ShareWeb, 1e-9)

	assert.Equal(t, domain.DestinationMessage, p.DominantDestination)
	assert.Equal(t, "WHATSAPP_MESSAGE", p.DominantCTA)
	assert.Equal(t, 3, p.DistinctDestTypes)
	assert.Equal(t, 3, p.DistinctCTATypes)

	// ad-1 e ad-2 têm a mesma copy módulo pontuação e caixa; ad-4 não
	// tem texto e não gera fingerprint
	assert.Equal(t, 2, p.DistinctCreative)
	assert.InDelta(t, 0.50, p.CreativeRatio, 1e-9)

	// Só o ad-1 está no ar há 21 dias ou mais; ad-3 teve apenas 10 dias de
	// veiculação e ad-4 não tem data mensurável
	assert.InDelta(t, 0.25, p.AlwaysOnShare, 1e-9)

	// ad-1 (30 dias, limite da janela) e ad-2 (5 dias) contam na velocidade
	assert.Equal(t, 2, p.Velocity30d)

	assert.Equal(t, int64(1000), p.PagePopularity)

	// Domínios deduplicados, minúsculos e sem www; tel: não tem host
	assert.Equal(t, []string{"wa.me", "example.com"}, p.Domains)
	assert.Len(t, p.OutboundURLs, 3)

	assert.InDelta(t, 0.75, p.PlatformShare["FACEBOOK"], 1e-9)
	assert.InDelta(t, 0.25, p.PlatformShare["INSTAGRAM"], 1e-9)
}

func TestAggregator_Aggregate_OrdemDePrimeiraOcorrencia(t *testing.T) {
	a := New(loadTaxonomies(t), nil)

	ads := []domain.AdRecord{
		{AdvertiserID: "adv-B", AdID: "ad-1"},
		{AdvertiserID: "adv-A", AdID: "ad-2"},
		{AdvertiserID: "adv-B", AdID: "ad-3"},
	}

	profiles := a.Aggregate(ads)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "adv-B", profiles[0].AdvertiserID)
	assert.Equal(t, "adv-A", profiles[1].AdvertiserID)
	assert.Equal(t, 2, profiles[0].TotalAds)
	assert.Equal(t, 1, profiles[1].TotalAds)
}

func TestAggregator_Aggregate_DesempateDaModaPorPrimeiraOcorrencia(t *testing.T) {
	a := New(loadTaxonomies(t), nil)

	// Empate 2x2 entre CALL e MESSAGE; CALL aparece primeiro no lote
	ads := []domain.AdRecord{
		{AdvertiserID: "adv-1", AdID: "ad-1", CTAType: "CALL_NOW"},
		{AdvertiserID: "adv-1", AdID: "ad-2", CTAType: "CALL_NOW"},
		{AdvertiserID: "adv-1", AdID: "ad-3", CTAType: "WHATSAPP_MESSAGE"},
		{AdvertiserID: "adv-1", AdID: "ad-4", CTAType: "WHATSAPP_MESSAGE"},
	}

	profiles := a.Aggregate(ads)
	assert.Len(t, profiles, 1)
	assert.Equal(t, domain.DestinationCall, profiles[0].DominantDestination)
	assert.Equal(t, "CALL_NOW", profiles[0].DominantCTA)
}

func TestAggregator_Aggregate_AnuncioFuturoNaoContaNasMetricasDeData(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	a := New(loadTaxonomies(t), func() time.Time { return now })

	ads := []domain.AdRecord{
		{
			AdvertiserID: "adv-1",
			AdID:         "ad-1",
			Active:       true,
			StartDate:    timePtr(now.Add(24 * time.Hour)),
		},
	}

	profiles := a.Aggregate(ads)
	assert.Len(t, profiles, 1)
	assert.Equal(t, 0, profiles[0].Velocity30d)
	assert.InDelta(t, 0.0, profiles[0].AlwaysOnShare, 1e-9)
}

func TestAggregator_Aggregate_TextoCombinadoNuncaPassaDoLimite(t *testing.T) {
	a := New(loadTaxonomies(t), nil)

	// O segundo corpo é truncado ao cruzar o limite e o terceiro nem entra
	ads := []domain.AdRecord{
		{AdvertiserID: "adv-1", AdID: "ad-1", BodyText: strings.Repeat("a", 15000)},
		{AdvertiserID: "adv-1", AdID: "ad-2", BodyText: strings.Repeat("b", 15000)},
		{AdvertiserID: "adv-1", AdID: "ad-3", BodyText: "texto descartado"},
	}

	profiles := a.Aggregate(ads)
	assert.Len(t, profiles, 1)
	assert.Equal(t, 20000, len(profiles[0].CombinedText))
	assert.NotContains(t, profiles[0].CombinedText, "texto descartado")

	// O fingerprint de criativo distinto independe do limite do texto
	assert.Equal(t, 3, profiles[0].DistinctCreative)
}
