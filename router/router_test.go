package router

import (
	"testing"

	"github.com/indigo-web/bishop"
	"github.com/indigo-web/bishop/http/method"
	"github.com/indigo-web/bishop/http/status"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	res := bishop.HaltResource(status.OK)
	r := New().Route("/widgets", method.GET, res)

	t.Run("matched", func(t *testing.T) {
		got, ok := r.Match("/widgets", method.GET)
		require.True(t, ok)
		require.Same(t, res, got)
	})

	t.Run("unknown path", func(t *testing.T) {
		_, ok := r.Match("/missing", method.GET)
		require.False(t, ok)
	})

	t.Run("unknown method on known path", func(t *testing.T) {
		_, ok := r.Match("/widgets", method.POST)
		require.False(t, ok)
	})

	t.Run("methods", func(t *testing.T) {
		r.Route("/widgets", method.POST, res)
		require.ElementsMatch(t, []method.Method{method.GET, method.POST}, r.Methods("/widgets"))
	})
}
