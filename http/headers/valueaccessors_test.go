package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamOf(t *testing.T) {
	value := "hello;world=true;another=earth"

	t.Run("Positive_World", func(t *testing.T) {
		require.Equal(t, "true", ParamOf(value, "world", ""))
	})

	t.Run("Positive_Another", func(t *testing.T) {
		require.Equal(t, "earth", ParamOf(value, "another", ""))
	})

	t.Run("Negative", func(t *testing.T) {
		require.Empty(t, ParamOf(value, "unknown", ""))
	})
}

func TestValueOf(t *testing.T) {
	valueWithoutParams := "text/html"
	valueWithParams := "text/html;q=0.9"

	t.Run("WithoutParams", func(t *testing.T) {
		require.Equal(t, valueWithoutParams, ValueOf(valueWithoutParams))
	})

	t.Run("WithParams", func(t *testing.T) {
		require.Equal(t, "text/html", ValueOf(valueWithParams))
	})
}
