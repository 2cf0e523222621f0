// Package idgen generates unique numeric identifiers for new users.
package idgen

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique 64-bit identifiers.
type Generator interface {
	NextID() int64
}

// Snowflake generates time-ordered ids with a per-instance node number.
type Snowflake struct {
	mu   sync.Mutex
	node *snowflake.Node
}

// NewSnowflake creates a generator for nodeID, which must be in [0, 1023]
// and unique per running instance.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// NextID implements Generator.
func (s *Snowflake) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.node.Generate().Int64()
}

// Sequence hands out consecutive ids starting after the given value.
// It is intended for tests and seeded fixtures.
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence whose first id is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// NextID implements Generator.
func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}

var (
	_ Generator = (*Snowflake)(nil)
	_ Generator = (*Sequence)(nil)
)
