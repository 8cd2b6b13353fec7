package domain

// ClusterLabel é o rótulo comportamental final do anunciante.
// A atribuição é priorizada: message_first > call_first > form_first >
// web_consult > uncategorized.
type ClusterLabel string

const (
	ClusterMessageFirst  ClusterLabel = "message_first"
	ClusterCallFirst     ClusterLabel = "call_first"
	ClusterFormFirst     ClusterLabel = "form_first"
	ClusterWebConsult    ClusterLabel = "web_consult"
	ClusterUncategorized ClusterLabel = "uncategorized"
)

// ClusterAssignment é a atribuição final de cluster de um anunciante
type ClusterAssignment struct {
	Label       ClusterLabel `json:"label"`
	MultiFunnel bool         `json:"multi_funnel"`
	JunkRisk    bool         `json:"junk_risk"`
	TotalScore  float64      `json:"total_score"`
}
