package bishop

import (
	"errors"
	"testing"

	"github.com/indigo-web/bishop/http/cookie"
	"github.com/indigo-web/bishop/http/mime"
	"github.com/indigo-web/bishop/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponseBasics(t *testing.T) {
	r := NewResponse(nil)

	r.Code(status.Accepted)
	require.Equal(t, status.Accepted, r.Status())

	r.ContentType(mime.JSON)
	r.SetHeader("X-One", "a")
	r.Header("X-Two", "b", "c")
	require.Equal(t, "a", r.Headers().Value("X-One"))

	r.String("hello")
	require.Equal(t, "hello", string(r.Body()))

	r.Bytes([]byte("world"))
	require.Equal(t, "world", string(r.Body()))

	n, err := r.Write([]byte("!"))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "world!", string(r.Body()))

	r.Clear()
	require.Equal(t, status.OK, r.Status())
	require.Empty(t, r.Body())
	require.True(t, r.Headers().Empty())
}

func TestResponseJSON(t *testing.T) {
	r := NewResponse(nil)
	r.JSON(map[string]string{"hello": "world"})

	require.Equal(t, mime.JSON, r.contentType)
	require.JSONEq(t, `{"hello":"world"}`, string(r.Body()))
}

func TestResponseCookies(t *testing.T) {
	r := NewResponse(nil)
	r.Cookie(cookie.New("a", "1"), cookie.New("b", "2"))

	require.Len(t, r.Cookies(), 2)
}

func TestResponseError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		r := NewResponse(nil)
		r.Error(nil)
		require.Equal(t, status.OK, r.Status())
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		r := NewResponse(nil)
		r.Error(errors.New("boom"))
		require.Equal(t, status.InternalServerError, r.Status())
		require.Equal(t, "boom", string(r.Body()))
	})

	t.Run("HTTPError carries its own code", func(t *testing.T) {
		r := NewResponse(nil)
		r.Error(status.HTTPError{Code: status.Teapot, Message: "short and stout"})
		require.Equal(t, status.Teapot, r.Status())
		require.Equal(t, "short and stout", string(r.Body()))
	})
}
