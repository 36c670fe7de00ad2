package v1

import "sync"

// sessionLocks serializes membership transitions per session id within this
// process. Stripes rather than one mutex per session: membership writes are
// short and contention is per-stripe, so a fixed table is enough and nothing
// has to be garbage collected.
//
// A horizontally scaled deployment would need the same guarantee at the
// database (SELECT ... FOR UPDATE on the session row); a single instance is
// fully serialized by this table plus the repository's transaction.
type sessionLocks struct {
	stripes [64]sync.Mutex
}

func (l *sessionLocks) lock(sessionID int64) *sync.Mutex {
	return &l.stripes[uint64(sessionID)%uint64(len(l.stripes))]
}
