package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(nil)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))

	var prm Prm
	require.NoError(t, prm.SetLevelString("debug"))
	require.NoError(t, prm.SetEncoding(EncodingJSON))
	prm.DisableTimestamp()

	l, err = NewLogger(&prm)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestPrm(t *testing.T) {
	var prm Prm
	require.Error(t, prm.SetLevelString("loud"))
	require.Error(t, prm.SetEncoding("xml"))
	require.NoError(t, prm.SetEncoding(""))
	require.Equal(t, EncodingConsole, prm.encoding)
}
