package datastreams

import "sync/atomic"

// stats holds the six monotonic counters a stream publishes. All fields are
// updated with atomic fetch-and-add/sub; activeConnections is the only one
// that may decrease.
type stats struct {
	accepted              atomic.Uint64
	deduplicated          atomic.Uint64
	partialReconnects     atomic.Uint64
	fullReconnects        atomic.Uint64
	configuredConnections atomic.Uint64
	activeConnections     atomic.Uint64
}

// Stats is a consistent-per-field snapshot of a stream's counters. Fields
// are not jointly consistent across a concurrent update.
type Stats struct {
	Accepted              uint64
	Deduplicated          uint64
	PartialReconnects     uint64
	FullReconnects        uint64
	ConfiguredConnections uint64
	ActiveConnections     uint64
	TotalReceived         uint64
}

func (s *stats) snapshot() Stats {
	accepted := s.accepted.Load()
	deduplicated := s.deduplicated.Load()
	return Stats{
		Accepted:              accepted,
		Deduplicated:          deduplicated,
		PartialReconnects:     s.partialReconnects.Load(),
		FullReconnects:        s.fullReconnects.Load(),
		ConfiguredConnections: s.configuredConnections.Load(),
		ActiveConnections:     s.activeConnections.Load(),
		TotalReceived:         accepted + deduplicated,
	}
}
