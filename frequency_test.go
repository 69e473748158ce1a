package huffpack

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	freqs, err := CountFrequencies(bytes.NewReader([]byte{65, 65, 66}))
	require.NoError(t, err)

	for symbol := Symbol(0); symbol < EndOfStream; symbol++ {
		var expect uint64
		switch symbol {
		case 65:
			expect = 2
		case 66:
			expect = 1
		}
		require.Equal(t, expect, freqs[symbol], "count for symbol %s", symbol)
	}
	require.Equal(t, uint64(1), freqs[EndOfStream])
	require.Equal(t, []Symbol{65, 66, EndOfStream}, freqs.Symbols())
	require.Equal(t, uint64(3), freqs.Literals())
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs, err := CountFrequencies(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Equal(t, []Symbol{EndOfStream}, freqs.Symbols())
	require.Equal(t, uint64(0), freqs.Literals())
}

func TestCountFrequencies_ShortReads(t *testing.T) {
	input := bytes.Repeat([]byte("abracadabra"), 100)

	type testRow struct {
		name string
		wrap func(io.Reader) io.Reader
	}

	testData := [...]testRow{
		{name: "OneByteReader", wrap: iotest.OneByteReader},
		{name: "HalfReader", wrap: iotest.HalfReader},
		{name: "DataErrReader", wrap: iotest.DataErrReader},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			freqs, err := CountFrequencies(row.wrap(bytes.NewReader(input)))
			require.NoError(t, err)
			require.Equal(t, uint64(500), freqs['a'])
			require.Equal(t, uint64(200), freqs['b'])
			require.Equal(t, uint64(200), freqs['r'])
			require.Equal(t, uint64(100), freqs['c'])
			require.Equal(t, uint64(100), freqs['d'])
			require.Equal(t, uint64(1100), freqs.Literals())
			require.Equal(t, uint64(1), freqs[EndOfStream])
		})
	}
}

func TestCountFrequencies_ReaderError(t *testing.T) {
	errBoom := errors.New("boom")
	_, err := CountFrequencies(iotest.ErrReader(errBoom))
	require.Equal(t, errBoom, err)
}
