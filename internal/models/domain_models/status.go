package domain_models

// AgentStatus reports one agent's identity and readiness. Consumed only by
// external monitoring, never by orchestration logic.
type AgentStatus struct {
	Agent         string `json:"agent"`
	Status        string `json:"status"`
	InitializedAt string `json:"initialized_at"`
}

type ConciergeStatus struct {
	Status        string        `json:"status"`
	Version       string        `json:"version"`
	InitializedAt string        `json:"initialized_at"`
	Agents        []AgentStatus `json:"agents"`
}
