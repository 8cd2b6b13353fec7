package cluster

import (
	"testing"

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

func TestClusterer_Label(t *testing.T) {
	c := New(loadTaxonomies(t))

	tests := []struct {
		name     string
		profile  *domain.AdvertiserProfile
		expected domain.ClusterLabel
	}{
		{
			name: "Share de mensagem acima do piso rotula message_first",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationWeb,
				ShareMessage:        0.12,
			},
			expected: domain.ClusterMessageFirst,
		},
		{
			name: "Mensagem tem precedência sobre ligação",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationMessage,
				ShareMessage:        0.40,
				ShareCall:           0.40,
			},
			expected: domain.ClusterMessageFirst,
		},
		{
			name: "Destino dominante CALL rotula call_first",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationCall,
			},
			expected: domain.ClusterCallFirst,
		},
		{
			name: "Formulário com follow-up no limiar baixo rotula form_first",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationWeb,
				ShareForm:           0.22,
				CombinedText:        "Apply today and we will contact you soon.",
			},
			expected: domain.ClusterFormFirst,
		},
		{
			name: "Formulário acima do limiar incondicional rotula form_first sem follow-up",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationWeb,
				ShareForm:           0.32,
			},
			expected: domain.ClusterFormFirst,
		},
		{
			name: "Perfil web consultivo rotula web_consult",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "LEARN_MORE",
				CombinedText:        "Book a free consultation with our team. Do you qualify?",
				Domains:             []string{"example.com"},
			},
			expected: domain.ClusterWebConsult,
		},
		{
			name: "Perfil web consultivo com destino transacional fica uncategorized",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "LEARN_MORE",
				CombinedText:        "Book a free consultation with our team. Do you qualify?",
				Domains:             []string{"mystore.myshopify.com"},
			},
			expected: domain.ClusterUncategorized,
		},
		{
			name: "Sem sinal conversacional fica uncategorized",
			profile: &domain.AdvertiserProfile{
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "SHOP_NOW",
			},
			expected: domain.ClusterUncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := c.Assign(tt.profile, domain.ScoreRecord{}, domain.ScoreRecord{}, domain.ScoreRecord{})
			assert.Equal(t, tt.expected, assignment.Label)
		})
	}
}

func TestClusterer_MultiFunnel(t *testing.T) {
	c := New(loadTaxonomies(t))

	tests := []struct {
		name     string
		profile  *domain.AdvertiserProfile
		expected bool
	}{
		{
			name: "Cinco criativos distintos marcam multi_funnel",
			profile: &domain.AdvertiserProfile{
				DistinctCreative: 5,
			},
			expected: true,
		},
		{
			name: "Dois canais conversacionais com share relevante marcam multi_funnel",
			profile: &domain.AdvertiserProfile{
				ShareMessage: 0.06,
				ShareCall:    0.06,
			},
			expected: true,
		},
		{
			name: "Canal único não marca multi_funnel",
			profile: &domain.AdvertiserProfile{
				DistinctCreative: 2,
				ShareMessage:     0.90,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := c.Assign(tt.profile, domain.ScoreRecord{}, domain.ScoreRecord{}, domain.ScoreRecord{})
			assert.Equal(t, tt.expected, assignment.MultiFunnel)
		})
	}
}

func TestClusterer_JunkRisk(t *testing.T) {
	c := New(loadTaxonomies(t))

	tests := []struct {
		name     string
		profile  *domain.AdvertiserProfile
		expected bool
	}{
		{
			name: "CTA transacional com domínio de marketplace marca junk_risk",
			profile: &domain.AdvertiserProfile{
				DominantCTA: "SHOP_NOW",
				Domains:     []string{"amazon.com"},
			},
			expected: true,
		},
		{
			name: "Copy dominada por conteúdo e mídia marca junk_risk",
			profile: &domain.AdvertiserProfile{
				DominantCTA:  "LEARN_MORE",
				CombinedText: "New episode of our podcast! Subscribe to the channel and read the blog.",
			},
			expected: true,
		},
		{
			name: "CTA transacional sem domínio transacional não marca junk_risk",
			profile: &domain.AdvertiserProfile{
				DominantCTA: "SHOP_NOW",
				Domains:     []string{"example.com"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := c.Assign(tt.profile, domain.ScoreRecord{}, domain.ScoreRecord{}, domain.ScoreRecord{})
			assert.Equal(t, tt.expected, assignment.JunkRisk)
		})
	}
}

func TestCompositeScore(t *testing.T) {
	tests := []struct {
		name     string
		money    int
		urgency  int
		fit      int
		expected float64
	}{
		{
			name:     "Scores máximos normalizam para 100",
			money:    50,
			urgency:  50,
			fit:      50,
			expected: 100.0,
		},
		{
			name:     "Scores zerados normalizam para zero",
			expected: 0.0,
		},
		{
			name:     "Combinação ponderada 45/35/20",
			money:    40,
			urgency:  30,
			fit:      20,
			expected: 65.0,
		},
		{
			name:     "Resultado arredondado para uma casa decimal",
			money:    33,
			urgency:  27,
			fit:      12,
			expected: 53.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := compositeScore(
				domain.ScoreRecord{Total: tt.money},
				domain.ScoreRecord{Total: tt.urgency},
				domain.ScoreRecord{Total: tt.fit},
			)
			assert.Equal(t, tt.expected, score)
		})
	}
}
