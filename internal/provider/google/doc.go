// Package google provides a Google Gemini client implementing [egglens.ChatProvider].
//
// It wraps google.golang.org/genai against the Gemini API backend. System
// instructions (from [egglens.WithSystem] or RoleSystem messages) are sent
// in the request config, not as conversation turns.
package google
