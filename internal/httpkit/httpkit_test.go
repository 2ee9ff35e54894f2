package httpkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, 30*time.Second, c.Timeout)
	_, ok := c.Transport.(*userAgentTransport)
	assert.True(t, ok)
}

func TestNewClient_WithTimeout(t *testing.T) {
	c := NewClient(WithTimeout(8 * time.Second))
	assert.Equal(t, 8*time.Second, c.Timeout)
}

func TestUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	t.Run("default user agent is injected", func(t *testing.T) {
		resp, err := NewClient().Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, DefaultUserAgent, got)
	})

	t.Run("explicit header wins", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "custom/2.0")

		resp, err := NewClient(WithUserAgent("ignored/1.0")).Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "custom/2.0", got)
	})

	t.Run("configured user agent", func(t *testing.T) {
		resp, err := NewClient(WithUserAgent("egglens/2.0")).Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "egglens/2.0", got)
	})

	t.Run("empty user agent keeps default", func(t *testing.T) {
		resp, err := NewClient(WithUserAgent("")).Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, DefaultUserAgent, got)
	})
}

func TestReadErrorBody(t *testing.T) {
	t.Run("nil body", func(t *testing.T) {
		assert.Empty(t, ReadErrorBody(nil, 10))
	})

	t.Run("truncates to limit", func(t *testing.T) {
		body := io.NopCloser(strings.NewReader(`{"status_message":"Invalid API key"}`))
		assert.Equal(t, `{"status_me`, ReadErrorBody(body, 11))
	})
}
