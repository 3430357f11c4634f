package ai

import (
	"math/rand"

	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

// TargetMemory is the per-opponent-board bookkeeping every strategy
// works against: the set of cells already fired at, a FIFO queue of
// priority candidates next to known hits, and the unresolved hit
// streak of the ship being probed. One instance per game, reset when
// a new game starts.
//
// The fired set only grows; a fired coordinate is never enqueued and
// a queued coordinate is never enqueued twice.
type TargetMemory struct {
	gridSize int
	fired    map[mb.Coordinates]struct{}
	queue    []mb.Coordinates
	queued   map[mb.Coordinates]struct{}
	streak   []mb.Coordinates
	rng      *rand.Rand
}

func NewTargetMemory(gridSize int, seed int64) *TargetMemory {
	m := &TargetMemory{
		gridSize: gridSize,
		rng:      rand.New(rand.NewSource(seed)),
	}
	m.Reset()
	return m
}

func (m *TargetMemory) Reset() {
	m.fired = make(map[mb.Coordinates]struct{}, m.gridSize*m.gridSize)
	m.queue = m.queue[:0]
	m.queued = make(map[mb.Coordinates]struct{})
	m.streak = m.streak[:0]
}

func (m *TargetMemory) GridSize() int {
	return m.gridSize
}

func (m *TargetMemory) InBounds(c mb.Coordinates) bool {
	return c.X >= 0 && c.X < m.gridSize && c.Y >= 0 && c.Y < m.gridSize
}

func (m *TargetMemory) MarkFired(c mb.Coordinates) {
	m.fired[c] = struct{}{}
}

func (m *TargetMemory) HasFired(c mb.Coordinates) bool {
	_, prs := m.fired[c]
	return prs
}

func (m *TargetMemory) FiredCount() int {
	return len(m.fired)
}

// Enqueue appends c to the priority queue. Out-of-bounds, already
// fired and already queued coordinates are refused.
func (m *TargetMemory) Enqueue(c mb.Coordinates) bool {
	if !m.InBounds(c) || m.HasFired(c) {
		return false
	}
	if _, prs := m.queued[c]; prs {
		return false
	}

	m.queue = append(m.queue, c)
	m.queued[c] = struct{}{}
	return true
}

// Dequeue pops the queue front, skipping anything fired at since it
// was queued.
func (m *TargetMemory) Dequeue() (mb.Coordinates, bool) {
	for len(m.queue) > 0 {
		c := m.queue[0]
		m.queue = m.queue[1:]
		delete(m.queued, c)

		if !m.HasFired(c) {
			return c, true
		}
	}
	return mb.Coordinates{}, false
}

func (m *TargetMemory) QueueLen() int {
	return len(m.queue)
}

func (m *TargetMemory) ClearQueue() {
	m.queue = m.queue[:0]
	m.queued = make(map[mb.Coordinates]struct{})
}

func (m *TargetMemory) RecordHit(c mb.Coordinates) {
	m.streak = append(m.streak, c)
}

func (m *TargetMemory) Streak() []mb.Coordinates {
	return m.streak
}

func (m *TargetMemory) ClearStreak() {
	m.streak = m.streak[:0]
}

// randomUntried picks uniformly among not-yet-fired cells satisfying
// keep (nil keeps everything). Candidates are collected in row-major
// order so a fixed seed yields a fixed shot sequence.
func (m *TargetMemory) randomUntried(keep func(mb.Coordinates) bool) (mb.Coordinates, bool) {
	candidates := make([]mb.Coordinates, 0, m.gridSize*m.gridSize-len(m.fired))
	for x := 0; x < m.gridSize; x++ {
		for y := 0; y < m.gridSize; y++ {
			c := mb.NewCoordinates(x, y)
			if m.HasFired(c) {
				continue
			}
			if keep != nil && !keep(c) {
				continue
			}
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return mb.Coordinates{}, false
	}
	return candidates[m.rng.Intn(len(candidates))], true
}
