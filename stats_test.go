package bytestream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthStats(t *testing.T) {
	s, err := NewWithConfig(Config{InitialSize: 4, GuardLimit: 1024, TrackGrowth: true})
	require.NoError(t, err)

	stats, err := s.GrowthStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Reallocations)

	// 4 -> 8 -> 16 -> 32
	for i := 0; i < 32; i++ {
		require.NoError(t, s.WriteUint8(uint8(i)))
	}

	stats, err = s.GrowthStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Reallocations)
	assert.Equal(t, int64(4+8+16), stats.BytesCopied)
	assert.Equal(t, int64(8), stats.MinCapacity)
	assert.Equal(t, int64(32), stats.MaxCapacity)
	assert.InDelta(t, 56.0/3, stats.MeanCapacity, 0.01)
	assert.Equal(t, int64(16), stats.P50Capacity)
	assert.Equal(t, int64(32), stats.P99Capacity)
}

func TestGrowthStatsDisabled(t *testing.T) {
	s, err := NewWithConfig(Config{InitialSize: 4, GuardLimit: 1024})
	require.NoError(t, err)

	_, err = s.GrowthStats()
	assert.Error(t, err)
}
