package huffpack

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		bits   []uint8
		expect string
	}

	testData := [...]testRow{
		{bits: nil, expect: `""`},
		{bits: []uint8{0}, expect: `"0"`},
		{bits: []uint8{1, 0, 1, 1}, expect: `"1011"`},
		{bits: []uint8{1, 1, 0, 0, 0, 0, 0, 0, 0, 1}, expect: `"1100000001"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.bits...)
		t.Run(row.expect, func(t *testing.T) {
			actual := hc.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			if hc.Len() != len(row.bits) {
				t.Errorf("expected length %d, got %d", len(row.bits), hc.Len())
			}
		})
	}
}

func TestCode_AppendPopAcrossWords(t *testing.T) {
	var hc Code
	pattern := func(i int) uint8 { return uint8((i*7 + i/3) % 2) }
	for i := 0; i < 150; i++ {
		hc.Append(pattern(i))
	}
	require.Equal(t, 150, hc.Len())
	for i := 0; i < 150; i++ {
		require.Equal(t, pattern(i), hc.Bit(i), "bit %d", i)
	}

	for i := 149; i >= 100; i-- {
		require.Equal(t, pattern(i), hc.Pop(), "pop %d", i)
	}
	require.Equal(t, 100, hc.Len())

	// Bits popped and appended again must not leak the old values.
	for i := 0; i < 50; i++ {
		hc.Append(0)
	}
	for i := 100; i < 150; i++ {
		require.Equal(t, uint8(0), hc.Bit(i), "bit %d", i)
	}
}

func TestCode_CloneIsIndependent(t *testing.T) {
	hc := MakeCode(1, 0, 1)
	clone := hc.Clone()
	hc.Pop()
	hc.Append(0)

	require.Equal(t, `"101"`, clone.String())
	require.Equal(t, `"100"`, hc.String())
	require.False(t, hc.Equal(clone))
	require.True(t, clone.Equal(MakeCode(1, 0, 1)))
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(1, 1, 0, 1)
	require.True(t, hc.HasPrefix(Code{}))
	require.True(t, hc.HasPrefix(MakeCode(1, 1)))
	require.True(t, hc.HasPrefix(hc))
	require.False(t, hc.HasPrefix(MakeCode(1, 0)))
	require.False(t, hc.HasPrefix(MakeCode(1, 1, 0, 1, 0)))
}

func TestCode_Emit(t *testing.T) {
	var hc Code
	for i := 0; i < 70; i++ {
		hc.Append(uint8(i % 2))
	}
	hc.Append(1)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	require.NoError(t, hc.Emit(w))
	require.NoError(t, w.Close())
	require.Len(t, buf.Bytes(), 9)

	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	for i := 0; i < hc.Len(); i++ {
		bit, err := r.ReadBits(1)
		require.NoError(t, err)
		require.Equal(t, uint64(hc.Bit(i)), bit, "bit %d", i)
	}
}
