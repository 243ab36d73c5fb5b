package bishop

import (
	"testing"

	"github.com/indigo-web/bishop/http/status"
	"github.com/stretchr/testify/require"
)

func TestCallbackOut(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		require.True(t, Bool(true).boolValue())
		require.False(t, Bool(false).boolValue())
	})

	t.Run("forceStatus", func(t *testing.T) {
		out := ForceStatus(status.Teapot)
		require.Equal(t, kindStatus, out.kind)
		require.Equal(t, status.Teapot, out.code)
	})

	t.Run("response", func(t *testing.T) {
		out := Response(WithBody("hi"))
		require.True(t, out.boolValue())
		require.Equal(t, "hi", string(out.fragment().Body))
	})

	t.Run("decision", func(t *testing.T) {
		out := Decision(false, WithBody("fragment"))
		require.False(t, out.boolValue())
		require.Equal(t, "fragment", string(out.fragment().Body))
	})
}
