package huffpack

import (
	"go.uber.org/zap"
)

// Stats reports how much data an operation moved.
type Stats struct {
	// BytesIn and BytesOut count bytes consumed and produced.
	BytesIn  int64
	BytesOut int64

	// BitsRead counts compressed bits consumed (Decompress only).
	BitsRead int64

	// BitsWritten counts compressed bits produced, before padding to a
	// byte boundary (Compress only).
	BitsWritten int64
}

// Ratio returns BytesOut / BytesIn, or 0 if nothing was consumed.
func (s Stats) Ratio() float64 {
	if s.BytesIn == 0 {
		return 0
	}
	return float64(s.BytesOut) / float64(s.BytesIn)
}

func (s Stats) fields() []zap.Field {
	return []zap.Field{
		zap.Int64("bytesIn", s.BytesIn),
		zap.Int64("bytesOut", s.BytesOut),
		zap.Int64("bitsRead", s.BitsRead),
		zap.Int64("bitsWritten", s.BitsWritten),
	}
}

func bitsToBytes(bits int64) int64 {
	return (bits + 7) / 8
}
