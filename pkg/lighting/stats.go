package lighting

import (
	"fmt"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/google/uuid"
)

// Statistics tracks per-engine path tracing counters. Not safe for
// concurrent use; each engine owns its own instance.
type Statistics struct {
	PathCount    uint64          // Paths traced since creation
	RayTreeDepth core.Population // Distribution of per-path vertex counts
}

// RecordPath folds one traced path into the statistics
func (s *Statistics) RecordPath(depth int) {
	s.PathCount++
	s.RayTreeDepth.Insert(float64(depth))
}

// Snapshot copies the current counters into a reportable snapshot
func (s *Statistics) Snapshot(engineID uuid.UUID) StatisticsSnapshot {
	return StatisticsSnapshot{
		EngineID:  engineID,
		PathCount: s.PathCount,
		DepthSize: s.RayTreeDepth.Size(),
		DepthMin:  s.RayTreeDepth.Min(),
		DepthMax:  s.RayTreeDepth.Max(),
		DepthMean: s.RayTreeDepth.Mean(),
		DepthDev:  s.RayTreeDepth.StdDev(),
	}
}

// StatisticsSnapshot is a point-in-time copy of engine statistics, safe to
// hand between goroutines. Reporting is the caller's choice; engines never
// log their own numbers.
type StatisticsSnapshot struct {
	EngineID  uuid.UUID
	PathCount uint64
	DepthSize int64
	DepthMin  float64
	DepthMax  float64
	DepthMean float64
	DepthDev  float64
}

// String formats the snapshot for reporting
func (s StatisticsSnapshot) String() string {
	return fmt.Sprintf(
		"path tracing statistics: %d paths, ray tree depth avg %.1f min %.0f max %.0f dev %.2f",
		s.PathCount, s.DepthMean, s.DepthMin, s.DepthMax, s.DepthDev)
}
