package model

import ai "github.com/spetersoncode/egglens"

// ChatPricing contains pricing per million tokens (USD) for chat models.
type ChatPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Cost estimates the USD cost of a request with the given usage.
func (p ChatPricing) Cost(u ai.Usage) float64 {
	return float64(u.InputTokens)/1_000_000*p.InputPerMillion +
		float64(u.OutputTokens)/1_000_000*p.OutputPerMillion
}
