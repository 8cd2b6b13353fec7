package gate

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

func TestGate_Evaluate(t *testing.T) {
	g := New(loadTaxonomies(t))

	tests := []struct {
		name           string
		profile        *domain.AdvertiserProfile
		expectedPassed bool
		expectedReason domain.GateReason
	}{
		{
			name: "Destino dominante MESSAGE passa com motivo MESSAGE",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-1",
				DominantDestination: domain.DestinationMessage,
				ShareMessage:        0.60,
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonMessage,
		},
		{
			name: "Share de mensagem acima do piso passa mesmo com dominante WEB",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-2",
				DominantDestination: domain.DestinationWeb,
				ShareMessage:        0.15,
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonMessage,
		},
		{
			name: "Share de ligação acima do piso passa com motivo CALL",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-3",
				DominantDestination: domain.DestinationWeb,
				ShareCall:           0.15,
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonCall,
		},
		{
			name: "Formulário no limiar baixo exige linguagem de follow-up",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-4",
				DominantDestination: domain.DestinationWeb,
				ShareForm:           0.25,
				CombinedText:        "Fill out the form and we will contact you shortly.",
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonForm,
		},
		{
			name: "Formulário no limiar baixo sem follow-up não passa",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-5",
				AdvertiserName:      "Generic Co",
				DominantDestination: domain.DestinationWeb,
				ShareForm:           0.25,
				CombinedText:        "Fill out the form.",
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonNoSignalDrop,
		},
		{
			name: "Formulário acima do limiar incondicional passa sem follow-up",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-6",
				DominantDestination: domain.DestinationWeb,
				ShareForm:           0.45,
				CombinedText:        "Fill out the form.",
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonForm,
		},
		{
			name: "Anunciante 100% web com CTA de lead, linguagem consultiva e qualificação passa por WEB_CONSULT",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-7",
				AdvertiserName:      "Generic Co",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "LEARN_MORE",
				ShareWeb:            1.0,
				CombinedText:        "Schedule a free consultation with our experts. Do you qualify?",
				Domains:             []string{"example.com"},
				OutboundURLs:        []string{"https://example.com/contact"},
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonWebConsult,
		},
		{
			name: "Web consult sem follow-up nem qualificação não passa",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-8",
				AdvertiserName:      "Generic Co",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "LEARN_MORE",
				ShareWeb:            1.0,
				CombinedText:        "Schedule a free consultation with our experts.",
				Domains:             []string{"example.com"},
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonNoSignalDrop,
		},
		{
			name: "CTA transacional com domínio transacional cai em TRANSACTIONAL_DROP",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-9",
				AdvertiserName:      "My Store",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "SHOP_NOW",
				ShareWeb:            1.0,
				CombinedText:        "New arrivals every week.",
				Domains:             []string{"mystore.myshopify.com"},
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonTransactionalDrop,
		},
		{
			name: "Copy dominada por preço sem canal conversacional cai em TRANSACTIONAL_DROP",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-10",
				AdvertiserName:      "Deals Outlet",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "LEARN_MORE",
				ShareWeb:            1.0,
				CombinedText:        "Everything from $50. Get 20% off with free shipping. Buy now!",
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonTransactionalDrop,
		},
		{
			name: "Linguagem consultiva pula o drop transacional, mas sem sinal cai em NO_SIGNAL_DROP",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-11",
				AdvertiserName:      "My Store",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "SHOP_NOW",
				ShareWeb:            1.0,
				CombinedText:        "Book a free consultation before you decide.",
				Domains:             []string{"mystore.myshopify.com"},
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonNoSignalDrop,
		},
		{
			name: "Nome de setor regulado resgata anunciante sem sinal direto",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-12",
				AdvertiserName:      "Terra Nova Roofing",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "LEARN_MORE",
				ShareWeb:            1.0,
				CombinedText:        "Quality work since 1998.",
			},
			expectedPassed: true,
			expectedReason: domain.GateReasonRescued,
		},
		{
			name: "Setor regulado só na copy não resgata loja transacional",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-13",
				AdvertiserName:      "The Home Depot",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "SHOP_NOW",
				ShareWeb:            1.0,
				CombinedText:        "Everything for your roofing project.",
				OutboundURLs:        []string{"https://homedepot.com/shop/deals"},
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonTransactionalDrop,
		},
		{
			name: "Nome regulado com CTA transacional não resgata",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-14",
				AdvertiserName:      "Smith Dental Clinic",
				DominantDestination: domain.DestinationWeb,
				DominantCTA:         "SHOP_NOW",
				ShareWeb:            1.0,
				CombinedText:        "Whitening kits available.",
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonNoSignalDrop,
		},
		{
			name: "Perfil vazio cai em NO_SIGNAL_DROP",
			profile: &domain.AdvertiserProfile{
				AdvertiserID:        "adv-15",
				DominantDestination: domain.DestinationWeb,
			},
			expectedPassed: false,
			expectedReason: domain.GateReasonNoSignalDrop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := g.Evaluate(tt.profile)

			assert.Equal(t, tt.expectedPassed, verdict.Passed)
			assert.Equal(t, tt.expectedReason, verdict.Reason)

			// Motivos de aprovação e o campo Passed nunca divergem
			_, isPassReason := domain.PassReasons[verdict.Reason]
			assert.Equal(t, verdict.Passed, isPassReason)
		})
	}
}
