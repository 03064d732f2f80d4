package services

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/kvacad/studyhub/internal/catalog"
)

// SnapshotLoader fetches the raw collection from storage.
type SnapshotLoader func(ctx context.Context) ([]catalog.RawRecord, error)

const (
	partitionCacheSize = 128
	partitionCacheTTL  = 5 * time.Minute
)

// SnapshotService owns the collection snapshot. The snapshot is immutable
// and replaced wholesale on every refresh, never patched; views always read
// a consistent copy even while a refresh is in flight. Concurrent refresh
// triggers (e.g. two mutations racing) collapse into a single load.
type SnapshotService struct {
	loader     SnapshotLoader
	current    atomic.Pointer[catalog.Snapshot]
	group      singleflight.Group
	partitions *expirable.LRU[string, catalog.PartitionResult]
}

// NewSnapshotService creates a snapshot owner around the given loader.
func NewSnapshotService(loader SnapshotLoader) *SnapshotService {
	return &SnapshotService{
		loader:     loader,
		partitions: expirable.NewLRU[string, catalog.PartitionResult](partitionCacheSize, nil, partitionCacheTTL),
	}
}

// Current returns the live snapshot, loading one first if none has been
// taken yet.
func (s *SnapshotService) Current(ctx context.Context) (*catalog.Snapshot, error) {
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Refresh loads a fresh snapshot and swaps it in. Malformed records are
// dropped silently; only the count is logged. The partition cache is purged
// so no view serves results derived from the superseded snapshot.
func (s *SnapshotService) Refresh(ctx context.Context) (*catalog.Snapshot, error) {
	v, err, _ := s.group.Do("refresh", func() (any, error) {
		raws, err := s.loader(ctx)
		if err != nil {
			return nil, err
		}
		records, dropped := catalog.NormalizeAll(raws)
		if dropped > 0 {
			log.Printf("snapshot refresh: dropped %d malformed record(s)", dropped)
		}
		snap := catalog.NewSnapshot(records, time.Now())
		s.current.Store(snap)
		s.partitions.Purge()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalog.Snapshot), nil
}

// Partition returns the category partition for one (branch, semester) scope,
// serving from the LRU cache when the current snapshot already produced it.
func (s *SnapshotService) Partition(ctx context.Context, branch, semester string) (catalog.PartitionResult, error) {
	key := branch + "\x00" + semester
	if cached, ok := s.partitions.Get(key); ok {
		return cached, nil
	}
	snap, err := s.Current(ctx)
	if err != nil {
		return catalog.PartitionResult{}, err
	}
	result := snap.Partition(branch, semester)
	s.partitions.Add(key, result)
	return result, nil
}
