package bishop

import (
	"errors"
	"testing"

	"github.com/indigo-web/bishop/http/headers"
	"github.com/indigo-web/bishop/http/method"
	"github.com/indigo-web/bishop/http/status"
	"github.com/stretchr/testify/require"
)

func TestErrorResource(t *testing.T) {
	res := ErrorResource(errors.New("boom"))
	req := newReq(t, method.GET, "/", map[string]string{headers.Accept: "*/*"}, "")

	resp := Run(req, res)

	require.Equal(t, status.InternalServerError, resp.Status())
	require.Equal(t, "boom", string(resp.Body()))
}

func TestHaltResource(t *testing.T) {
	res := HaltResource(status.Forbidden, WithBody("nope"))
	req := newReq(t, method.GET, "/", map[string]string{headers.Accept: "*/*"}, "")

	resp := Run(req, res)

	require.Equal(t, status.Forbidden, resp.Status())
	require.Equal(t, "nope", string(resp.Body()))
}
