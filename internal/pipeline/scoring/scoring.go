// Package scoring implementa os três scorers independentes (Money, Urgency
// e Fit). Princípios comuns: todo subcomponente tem teto próprio, entradas
// de volume passam por transformação logarítmica antes do peso (uma fazenda
// de conteúdo com 10.000 anúncios não pode afogar anunciantes com
// comportamento moderado e sustentado) e razões em [0,1] escalam linear.
package scoring

import (
	"math"
)

// capPoints aplica o teto do componente
func capPoints(points, ceiling int) int {
	if points > ceiling {
		return ceiling
	}
	if points < 0 {
		return 0
	}
	return points
}

// log2Points converte um volume bruto em pontos log-escalados
func log2Points(raw float64, weight float64) int {
	if raw <= 0 {
		return 0
	}
	return int(math.Round(weight * math.Log2(1+raw)))
}

// log10Points idem, em base 10, para contadores de popularidade com ordens
// de grandeza maiores
func log10Points(raw float64, weight float64) int {
	if raw <= 0 {
		return 0
	}
	return int(math.Round(weight * math.Log10(1+raw)))
}

// linearPoints escala uma razão já limitada em [0,1]
func linearPoints(ratio float64, weight float64) int {
	if ratio <= 0 {
		return 0
	}
	return int(math.Round(weight * ratio))
}
