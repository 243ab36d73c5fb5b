package bishop

import (
	"testing"

	"github.com/indigo-web/bishop/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponderResolve(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		resp := NewResponse(nil)
		Literal("hello").resolve(nil, resp)
		require.Equal(t, "hello", string(resp.Body()))
	})

	t.Run("literal bytes", func(t *testing.T) {
		resp := NewResponse(nil)
		LiteralBytes([]byte("hello")).resolve(nil, resp)
		require.Equal(t, "hello", string(resp.Body()))
	})

	t.Run("partial", func(t *testing.T) {
		resp := NewResponse(nil)
		PartialResponder(WithStatus(status.Accepted)).resolve(nil, resp)
		require.Equal(t, status.Accepted, resp.Status())
	})

	t.Run("func scalar", func(t *testing.T) {
		resp := NewResponse(nil)
		Func(func(*Request) ResponderOut { return RespondBody("from func") }).resolve(nil, resp)
		require.Equal(t, "from func", string(resp.Body()))
	})

	t.Run("func bytes", func(t *testing.T) {
		resp := NewResponse(nil)
		Func(func(*Request) ResponderOut { return RespondBytes([]byte("from func bytes")) }).resolve(nil, resp)
		require.Equal(t, "from func bytes", string(resp.Body()))
	})

	t.Run("func partial", func(t *testing.T) {
		resp := NewResponse(nil)
		Func(func(*Request) ResponderOut { return RespondPartial(WithStatus(status.NoContent)) }).resolve(nil, resp)
		require.Equal(t, status.NoContent, resp.Status())
	})
}
