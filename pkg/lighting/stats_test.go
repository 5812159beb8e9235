package lighting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatistics_RecordPath(t *testing.T) {
	var stats Statistics
	for _, depth := range []int{2, 4, 6} {
		stats.RecordPath(depth)
	}

	snapshot := stats.Snapshot(uuid.New())
	assert.Equal(t, uint64(3), snapshot.PathCount)
	assert.Equal(t, int64(3), snapshot.DepthSize)
	assert.Equal(t, 2.0, snapshot.DepthMin)
	assert.Equal(t, 6.0, snapshot.DepthMax)
	assert.InDelta(t, 4.0, snapshot.DepthMean, 1e-12)
	assert.InDelta(t, 1.6329931618554518, snapshot.DepthDev, 1e-12)
}

func TestStatistics_EmptySnapshot(t *testing.T) {
	var stats Statistics
	id := uuid.New()

	snapshot := stats.Snapshot(id)
	assert.Equal(t, id, snapshot.EngineID)
	assert.Equal(t, uint64(0), snapshot.PathCount)
	assert.Equal(t, int64(0), snapshot.DepthSize)
	assert.Equal(t, 0.0, snapshot.DepthMin)
	assert.Equal(t, 0.0, snapshot.DepthMax)
	assert.Equal(t, 0.0, snapshot.DepthMean)
	assert.Equal(t, 0.0, snapshot.DepthDev)
}

func TestStatistics_SnapshotIsIndependent(t *testing.T) {
	var stats Statistics
	stats.RecordPath(5)

	snapshot := stats.Snapshot(uuid.New())
	stats.RecordPath(9)

	// Later records do not leak into an earlier snapshot
	assert.Equal(t, uint64(1), snapshot.PathCount)
	assert.Equal(t, 5.0, snapshot.DepthMax)
	assert.Equal(t, uint64(2), stats.PathCount)
}

func TestStatisticsSnapshot_String(t *testing.T) {
	var stats Statistics
	for _, depth := range []int{2, 4, 6} {
		stats.RecordPath(depth)
	}

	got := stats.Snapshot(uuid.New()).String()
	assert.Equal(t, "path tracing statistics: 3 paths, ray tree depth avg 4.0 min 2 max 6 dev 1.63", got)
}
