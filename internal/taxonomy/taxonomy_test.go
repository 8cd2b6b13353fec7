package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Acentos são removidos e a caixa é baixada",
			input:    "Consulta GRATUITA con Asesoría",
			expected: "consulta gratuita con asesoria",
		},
		{
			name:     "Espaços são colapsados",
			input:    "  agenda   tu \n visita\ttoday  ",
			expected: "agenda tu visita today",
		},
		{
			name:     "Pontuação é preservada",
			input:    "¿Calificas? ¡Escríbenos!",
			expected: "¿calificas? ¡escribenos!",
		},
		{
			name:     "Texto vazio normaliza para vazio",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestFingerprint(t *testing.T) {
	// Variações de caixa, acento e pontuação produzem a mesma impressão
	// digital; textos diferentes produzem impressões diferentes
	base := Fingerprint("Agenda tu consulta HOY!")

	assert.Equal(t, base, Fingerprint("agenda tu consulta hoy"))
	assert.Equal(t, base, Fingerprint("Agendá tu consulta hoy..."))
	assert.NotEqual(t, base, Fingerprint("agenda tu consulta mañana"))
}

func TestLoad(t *testing.T) {
	t.Run("Diretório válido compila todas as tabelas", func(t *testing.T) {
		cfg, err := Load("../../taxonomies")

		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Pertinência de CTA é insensível a caixa e espaços
		assert.True(t, cfg.MessageCTAs.Has("WHATSAPP_MESSAGE"))
		assert.True(t, cfg.MessageCTAs.Has(" whatsapp_message "))
		assert.False(t, cfg.MessageCTAs.Has("SHOP_NOW"))

		// Padrões de URL casam contra o texto cru em minúsculas
		assert.True(t, cfg.TelephonyURL.MatchAnyRaw("TEL:+5215551234567"))
		assert.False(t, cfg.TelephonyURL.MatchAnyRaw("https://example.com"))

		// Padrões de texto casam depois do fold de acentos
		assert.True(t, cfg.Consultative.MatchAny("Consulta gratuíta para ti"))
		assert.Equal(t, 2, cfg.Immediacy.CountDistinct("hazlo hoy, ahora mismo"))
	})

	t.Run("Diretório inexistente é erro", func(t *testing.T) {
		cfg, err := Load("testdata/nao-existe")

		assert.Nil(t, cfg)
		assert.Error(t, err)
	})
}

func TestNewConfig_TabelaVaziaEhErro(t *testing.T) {
	cfg, err := NewConfig(Tables{})

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vazia")
}

func TestPatternSet_CountDistinct_ContaCadaPadraoUmaVez(t *testing.T) {
	set, err := newPatternSet("teste", []string{`\bhoy\b`, `\bahora\b`})
	assert.NoError(t, err)

	// O mesmo padrão casando várias vezes conta uma única vez
	assert.Equal(t, 1, set.CountDistinct("hoy, hoy y hoy"))
	assert.Equal(t, 2, set.CountDistinct("hoy y ahora"))
	assert.Equal(t, 0, set.CountDistinct("algún día"))
}

func TestNewPatternSet_PadraoInvalidoEhErro(t *testing.T) {
	set, err := newPatternSet("teste", []string{`[`})

	assert.Nil(t, set)
	assert.Error(t, err)
}
