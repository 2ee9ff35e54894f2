// Package model provides chat model constants for the supported providers.
//
// Models know their provider, so the client can refuse a model that does
// not match the configured backend. Each model carries pricing used to
// estimate the cost of a request from its token usage.
//
//	m, err := model.Parse(egglens.ProviderGoogle, "gemini-2.5-flash-lite")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := c.Chat(ctx, messages, egglens.WithModel(m))
package model
