package idgen

import (
	"fmt"
	"sync"
	"time"
)

const (
	epoch         = int64(1735689600000) // 2025-01-01 00:00:00 UTC
	workerIDBits  = 10
	sequenceBits  = 12
	maxWorkerID   = -1 ^ (-1 << workerIDBits)
	maxSequence   = -1 ^ (-1 << sequenceBits)
	workerShift   = sequenceBits
	timeShift     = sequenceBits + workerIDBits
	numberPattern = "SLT-%s-%08d"
)

// Generator produces unique, roughly monotonic identifiers from a millisecond
// timestamp, a worker id and an in-millisecond sequence. The store still enforces
// uniqueness with a constraint; the generator only has to make collisions unlikely.
type Generator struct {
	mu       sync.Mutex
	lastTime int64
	workerID int64
	sequence int64
	now      func() int64
}

// New returns a generator for the given worker id, wrapped into range.
func New(workerID int64) *Generator {
	if workerID < 0 || workerID > maxWorkerID {
		workerID = workerID & maxWorkerID
	}
	return &Generator{
		workerID: workerID,
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

// NextID returns the next raw identifier.
func (g *Generator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now == g.lastTime {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			for now <= g.lastTime {
				now = g.now()
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastTime = now

	return ((now - epoch) << timeShift) | (g.workerID << workerShift) | g.sequence
}

// OrderNumber formats a human-readable order number, e.g. SLT-20250901143052-00012345.
func (g *Generator) OrderNumber() string {
	id := g.NextID()
	return fmt.Sprintf(numberPattern, time.Now().UTC().Format("20060102150405"), id%100000000)
}
