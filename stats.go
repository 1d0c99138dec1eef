package bytestream

import (
	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
)

// GrowthStats summarizes the reallocations performed by a stream
type GrowthStats struct {
	Reallocations int64   // number of times the storage was grown
	BytesCopied   int64   // written bytes carried over across all reallocations
	MinCapacity   int64   // smallest capacity grown to
	MaxCapacity   int64   // largest capacity grown to
	MeanCapacity  float64 // mean of the capacities grown to
	P50Capacity   int64
	P99Capacity   int64
}

type growthRecorder struct {
	h      *hdrhistogram.Histogram
	copied int64
}

func newGrowthRecorder(guard int) *growthRecorder {
	return &growthRecorder{
		h: hdrhistogram.New(1, int64(guard), 3),
	}
}

func (r *growthRecorder) record(capacity, copied int) {
	// capacity never exceeds the guard limit, the highest trackable value
	_ = r.h.RecordValue(int64(capacity))
	r.copied += int64(copied)
}

// GrowthStats returns the reallocation summary of a stream created with
// TrackGrowth set
func (s *ByteStream) GrowthStats() (GrowthStats, error) {
	if s.growth == nil {
		return GrowthStats{}, errors.New("growth tracking is not enabled for this stream")
	}

	h := s.growth.h
	return GrowthStats{
		Reallocations: h.TotalCount(),
		BytesCopied:   s.growth.copied,
		MinCapacity:   h.Min(),
		MaxCapacity:   h.Max(),
		MeanCapacity:  h.Mean(),
		P50Capacity:   h.ValueAtQuantile(50),
		P99Capacity:   h.ValueAtQuantile(99),
	}, nil
}
