package openai

import (
	"errors"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/egglens"
)

// wrapError wraps an OpenAI SDK error with egglens error categorization.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Not an API error (likely network error or timeout)
		return err
	}

	return ai.NewStatusError("openai request failed", apiErr.StatusCode, err)
}
