package huffpack

import (
	"io"

	"github.com/samber/lo"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies consumes r to completion and returns the number of times
// each byte value occurred.  The count for EndOfStream is always 1, so that
// the sentinel receives a leaf and a code even for empty input.
//
// Errors from r other than io.EOF are returned unchanged.
//
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var freqs FrequencyTable
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			freqs[b]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return FrequencyTable{}, err
		}
	}
	freqs[EndOfStream] = 1
	return freqs, nil
}

// Symbols returns, in ascending order, every Symbol with a nonzero count.
func (freqs *FrequencyTable) Symbols() []Symbol {
	all := lo.Map(lo.Range(NumSymbols), func(i int, _ int) Symbol {
		return Symbol(i)
	})
	return lo.Filter(all, func(sym Symbol, _ int) bool {
		return freqs[sym] != 0
	})
}

// Literals returns the total number of literal bytes counted.
func (freqs *FrequencyTable) Literals() uint64 {
	return lo.Sum(freqs[:EndOfStream])
}
