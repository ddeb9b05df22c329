package usecase

import "sync/atomic"

// SnapshotStore holds the current snapshot behind an atomic pointer.
// Replace installs a complete new snapshot; readers keep whatever pointer
// they loaded, so a concurrent replace never tears an in-flight read.
type SnapshotStore struct {
	current atomic.Pointer[Snapshot]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Replace(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}

func (s *SnapshotStore) Current() (*Snapshot, bool) {
	snap := s.current.Load()
	if snap == nil {
		return nil, false
	}
	return snap, true
}
