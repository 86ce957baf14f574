package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewVerbosity(t *testing.T) {
	quiet, syncQuiet, err := New(false)
	require.NoError(t, err)
	defer syncQuiet()
	require.True(t, quiet.V(INFO).Enabled())
	require.False(t, quiet.V(DEBUG).Enabled())

	verbose, syncVerbose, err := New(true)
	require.NoError(t, err)
	defer syncVerbose()
	require.True(t, verbose.V(DEBUG).Enabled())
}
