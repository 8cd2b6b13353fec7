package classifier

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

func TestClassifier_Classify(t *testing.T) {
	c := New(loadTaxonomies(t))

	tests := []struct {
		name      string
		ctaType   string
		url       string
		platforms []string
		expected  domain.DestinationType
	}{
		{
			name:      "CTA de mensagem resolve MESSAGE",
			ctaType:   "WHATSAPP_MESSAGE",
			url:       "https://example.com/contato",
			platforms: []string{"FACEBOOK"},
			expected:  domain.DestinationMessage,
		},
		{
			name:     "URL de serviço de mensagem resolve MESSAGE mesmo sem CTA",
			ctaType:  "",
			url:      "https://wa.me/5215551234567",
			expected: domain.DestinationMessage,
		},
		{
			name:      "Veiculação exclusiva em plataforma de mensagem resolve MESSAGE",
			ctaType:   "",
			url:       "",
			platforms: []string{"MESSENGER"},
			expected:  domain.DestinationMessage,
		},
		{
			name:      "Veiculação mista não conta como messaging-only",
			ctaType:   "",
			url:       "",
			platforms: []string{"MESSENGER", "FACEBOOK"},
			expected:  domain.DestinationWeb,
		},
		{
			name:     "CTA de ligação resolve CALL",
			ctaType:  "CALL_NOW",
			url:      "https://example.com",
			expected: domain.DestinationCall,
		},
		{
			name:     "CTA em minúsculas casa mesmo assim",
			ctaType:  "call_now",
			url:      "",
			expected: domain.DestinationCall,
		},
		{
			name:     "Esquema de telefonia na URL resolve CALL",
			ctaType:  "",
			url:      "tel:+15551234567",
			expected: domain.DestinationCall,
		},
		{
			name:     "CTA de formulário resolve FORM",
			ctaType:  "SIGN_UP",
			url:      "https://example.com/inscricao",
			expected: domain.DestinationForm,
		},
		{
			name:     "URL de agendamento resolve FORM",
			ctaType:  "",
			url:      "https://calendly.com/demo/30min",
			expected: domain.DestinationForm,
		},
		{
			name:     "GET_QUOTE pertence a MESSAGE e FORM e resolve MESSAGE",
			ctaType:  "GET_QUOTE",
			url:      "https://example.com",
			expected: domain.DestinationMessage,
		},
		{
			name:      "Sem sinal conversacional o default é WEB",
			ctaType:   "LEARN_MORE",
			url:       "https://example.com/sobre",
			platforms: []string{"FACEBOOK", "INSTAGRAM"},
			expected:  domain.DestinationWeb,
		},
		{
			name:     "Anúncio vazio resolve WEB",
			ctaType:  "",
			url:      "",
			expected: domain.DestinationWeb,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.ctaType, tt.url, tt.platforms)
			assert.Equal(t, tt.expected, result)
		})
	}
}
