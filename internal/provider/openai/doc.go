// Package openai provides an OpenAI chat completions client implementing
// [egglens.ChatProvider].
package openai
