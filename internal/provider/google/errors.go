package google

import (
	"errors"

	ai "github.com/spetersoncode/egglens"
	"google.golang.org/genai"
)

// wrapError wraps a Google GenAI error with egglens error categorization.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// Not an API error (likely network error or timeout)
		return err
	}

	return ai.NewStatusError("gemini request failed", apiErr.Code, err)
}
