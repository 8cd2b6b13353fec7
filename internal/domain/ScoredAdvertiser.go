package domain

import (
	"time"
)

// ScoredAdvertiser é a linha final do pipeline: o perfil comportamental
// acrescido de veredito do gate, três scores, cluster e posição no ranking.
// Cada etapa devolve uma cópia aumentada; nada é mutado no lugar.
type ScoredAdvertiser struct {
	Profile AdvertiserProfile `json:"profile"`

	Gate    GateVerdict       `json:"gate"`
	Money   ScoreRecord       `json:"money"`
	Urgency ScoreRecord       `json:"urgency"`
	Fit     ScoreRecord       `json:"fit"`
	Cluster ClusterAssignment `json:"cluster"`

	Rank int `json:"rank"`

	// ScoringError marca anunciantes cuja pontuação falhou; eles saem com
	// scores zerados e o lote segue.
	ScoringError string `json:"scoring_error,omitempty"`
}

// PipelineRunStatus indica o estado de uma execução do pipeline
type PipelineRunStatus string

const (
	PipelineRunRunning  PipelineRunStatus = "running"
	PipelineRunFinished PipelineRunStatus = "finished"
	PipelineRunFailed   PipelineRunStatus = "failed"
)

// PipelineRun registra uma execução completa do lote
type PipelineRun struct {
	ID                 string            `json:"id"`
	Status             PipelineRunStatus `json:"status"`
	TotalAds           int               `json:"total_ads"`
	TotalAdvertisers   int               `json:"total_advertisers"`
	PassedGate         int               `json:"passed_gate"`
	UncategorizedShare float64           `json:"uncategorized_share"`
	JunkRiskInTop20    int               `json:"junk_risk_in_top20"`
	StartedAt          time.Time         `json:"started_at"`
	FinishedAt         *time.Time        `json:"finished_at"`
	Error              string            `json:"error,omitempty"`
}
