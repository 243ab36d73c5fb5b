package bishop

import (
	"slices"
	"testing"

	"github.com/indigo-web/bishop/http/cookie"
	"github.com/indigo-web/bishop/http/status"
	"github.com/stretchr/testify/require"
)

func TestPartialMerge(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		resp := NewResponse(nil)
		WithStatus(status.Teapot).merge(resp)
		require.Equal(t, status.Teapot, resp.Status())
	})

	t.Run("header", func(t *testing.T) {
		resp := NewResponse(nil)
		WithHeader("X-Test", "a", "b").merge(resp)
		require.Equal(t, []string{"a", "b"}, slices.Collect(resp.Headers().Values("X-Test")))
	})

	t.Run("body", func(t *testing.T) {
		resp := NewResponse(nil)
		WithBody("hello").merge(resp)
		require.Equal(t, "hello", string(resp.Body()))
	})

	t.Run("cookies", func(t *testing.T) {
		resp := NewResponse(nil)
		WithCookies(cookie.New("session", "abc")).merge(resp)
		require.Equal(t, []cookie.Cookie{cookie.New("session", "abc")}, resp.Cookies())
	})

	t.Run("isZero", func(t *testing.T) {
		require.True(t, Partial{}.isZero())
		require.False(t, WithBody("x").isZero())
		require.False(t, WithCookies(cookie.New("a", "b")).isZero())
	})
}
