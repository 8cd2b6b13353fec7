package domain

// ScoreRecord é a saída de um scorer: total limitado a [0,50] mais o
// detalhamento por componente. O breakdown existe para transparência e
// depuração; o total nunca é re-derivado dele em etapas posteriores.
type ScoreRecord struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// NewScoreRecord monta o registro somando o breakdown já limitado por
// componente. Cada componente deve chegar aqui com o próprio teto aplicado.
func NewScoreRecord(breakdown map[string]int) ScoreRecord {
	total := 0
	for _, points := range breakdown {
		total += points
	}

	if total > 50 {
		total = 50
	}

	return ScoreRecord{
		Total:     total,
		Breakdown: breakdown,
	}
}
