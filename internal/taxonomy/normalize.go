package taxonomy

import (
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFolder remove marcas diacríticas (á→a, ñ→n, ç→c) para que os
// padrões EN/ES casem independente de acentuação.
var asciiFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devolve a forma canônica usada em todo casamento de padrões:
// ASCII-fold, minúsculas e espaços colapsados.
func Normalize(text string) string {
	folded, _, err := transform.String(asciiFolder, text)
	if err != nil {
		// Entrada com bytes inválidos cai no texto original; o casamento
		// de padrões continua válido, apenas sem o fold.
		folded = text
	}

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Fingerprint calcula a impressão digital estável de um criativo a partir
// do texto normalizado sem pontuação. Colisões do xxhash64 são toleradas:
// no pior caso subcontamos variantes distintas, nunca inflamos a contagem.
func Fingerprint(text string) uint64 {
	normalized := Normalize(text)

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	return xxhash.Sum64String(b.String())
}
