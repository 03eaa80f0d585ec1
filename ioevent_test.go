package grizzly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIOEventStringer(t *testing.T) {
	require.Equal(t, "NONE", IOEventNone.String())
	require.Equal(t, "ACCEPT", IOEventAccept.String())
	require.Equal(t, "CONNECT", IOEventConnect.String())
	require.Equal(t, "READ", IOEventRead.String())
	require.Equal(t, "WRITE", IOEventWrite.String())
	require.Equal(t, "CLOSE", IOEventClose.String())
	require.Panics(t, func() { _ = IOEvent(42).String() })
}
