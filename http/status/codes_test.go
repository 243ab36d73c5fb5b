package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, Status("OK"), Text(OK))
	require.Equal(t, Status("Not Found"), Text(NotFound))
	require.Equal(t, Status("I'm a teapot"), Text(Teapot))
	require.Equal(t, Status("Unknown Status Code"), Text(Code(999)))
}
