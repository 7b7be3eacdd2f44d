package web

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepAliveRoutes(t *testing.T) {
	t.Parallel()

	app := NewApp()

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, "GET %s", path)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotEmpty(t, body)
	}
}
