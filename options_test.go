package huffpack

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	compressed, err := CompressBytes([]byte{65, 65, 66}, WithLogger(logger))
	require.NoError(t, err)

	built := logs.FilterMessage("built Huffman tree").All()
	require.Len(t, built, 1)
	require.Equal(t, int64(3), built[0].ContextMap()["leaves"])
	require.Equal(t, int64(2), built[0].ContextMap()["depth"])

	finished := logs.FilterMessage("compress finished").All()
	require.Len(t, finished, 1)
	require.Equal(t, int64(70), finished[0].ContextMap()["bitsWritten"])

	_, err = DecompressBytes(compressed[:5], WithLogger(logger))
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("decompress failed").Len())
}

func TestWithLogger_Nil(t *testing.T) {
	var c Compressor
	c.Init(WithLogger(nil))
	require.NotNil(t, c.opts.logger)
}
