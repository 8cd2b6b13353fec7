package domain

// GateReason é o código de motivo do veredito do gate conversacional.
// Conjunto fechado: exatamente um código por anunciante.
type GateReason string

const (
	GateReasonMessage           GateReason = "MESSAGE"
	GateReasonCall              GateReason = "CALL"
	GateReasonForm              GateReason = "FORM"
	GateReasonWebConsult        GateReason = "WEB_CONSULT"
	GateReasonRescued           GateReason = "RESCUED"
	GateReasonTransactionalDrop GateReason = "TRANSACTIONAL_DROP"
	GateReasonNoSignalDrop      GateReason = "NO_SIGNAL_DROP"
)

// GateVerdict é o resultado do gate de necessidade conversacional
type GateVerdict struct {
	Passed bool       `json:"passed"`
	Reason GateReason `json:"reason"`
}

// PassReasons são os motivos que implicam aprovação no gate
var PassReasons = map[GateReason]struct{}{
	GateReasonMessage:    {},
	GateReasonCall:       {},
	GateReasonForm:       {},
	GateReasonWebConsult: {},
	GateReasonRescued:    {},
}
