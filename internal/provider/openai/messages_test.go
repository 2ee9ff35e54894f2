package openai

import (
	"errors"
	"testing"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/egglens"
	"github.com/stretchr/testify/assert"
)

func TestConvertMessages(t *testing.T) {
	t.Run("system instruction comes first", func(t *testing.T) {
		msgs := convertMessages("You are a movie fan.", []ai.Message{
			ai.UserMessage("Interstellar"),
		})
		assert.Len(t, msgs, 2)
		assert.NotNil(t, msgs[0].OfSystem)
		assert.NotNil(t, msgs[1].OfUser)
	})

	t.Run("skips empty messages", func(t *testing.T) {
		msgs := convertMessages("", []ai.Message{
			ai.UserMessage(""),
			{Role: ai.RoleAssistant, Content: "hi"},
		})
		assert.Len(t, msgs, 1)
		assert.NotNil(t, msgs[0].OfAssistant)
	})
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))

	t.Run("api errors are categorized", func(t *testing.T) {
		err := wrapError(&openai.Error{StatusCode: 401})
		assert.Equal(t, ai.ErrorPermanent, ai.CategoryOf(err))
		assert.Equal(t, 401, ai.StatusCodeOf(err))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		orig := errors.New("connection reset")
		assert.Same(t, orig, wrapError(orig))
	})
}
