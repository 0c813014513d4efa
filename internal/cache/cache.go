// ABOUTME: In-memory snapshot cache of the user's session tree.
// ABOUTME: Mutations are pure copy-on-write transforms applied after server success.
package cache

import (
	"sync"

	"github.com/harperreed/reps/internal/models"
)

// Snapshot is one immutable view of the session tree. Loaded distinguishes
// "not yet fetched" from "fetched, zero sessions". Transforms never modify
// a snapshot in place; holders of an old snapshot keep seeing old data.
type Snapshot struct {
	Sessions []models.Session
	Loaded   bool
}

// Store holds the current snapshot. It records outcomes of confirmed server
// operations; it is never the source of truth for whether one happened.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore returns a Store in the not-yet-loaded state.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Session returns the cached session with the given id, if present.
func (s *Store) Session(sessionID string) (models.Session, bool) {
	snap := s.Snapshot()
	for i := range snap.Sessions {
		if snap.Sessions[i].ID == sessionID {
			return snap.Sessions[i], true
		}
	}
	return models.Session{}, false
}

// SetSessions replaces the whole cache, used after fetch or login.
func (s *Store) SetSessions(sessions []models.Session) {
	s.apply(func(snap Snapshot) Snapshot { return setSessions(sessions) })
}

// ClearSessions resets the cache to the not-loaded state.
func (s *Store) ClearSessions() {
	s.apply(func(snap Snapshot) Snapshot { return Snapshot{} })
}

// AddExerciseToSession appends exercise to the named session. Unknown
// session ids are a no-op.
func (s *Store) AddExerciseToSession(sessionID string, exercise models.Exercise) {
	s.apply(func(snap Snapshot) Snapshot {
		return addExerciseToSession(snap, sessionID, exercise)
	})
}

// AddSetToExercise appends set to the named exercise within the named
// session. Unknown ids are a no-op.
func (s *Store) AddSetToExercise(sessionID, exerciseID string, set models.Set) {
	s.apply(func(snap Snapshot) Snapshot {
		return addSetToExercise(snap, sessionID, exerciseID, set)
	})
}

// DeleteSession removes the session and its whole subtree.
func (s *Store) DeleteSession(sessionID string) {
	s.apply(func(snap Snapshot) Snapshot { return deleteSession(snap, sessionID) })
}

// DeleteExerciseFromSession removes one exercise, and with it its sets.
func (s *Store) DeleteExerciseFromSession(sessionID, exerciseID string) {
	s.apply(func(snap Snapshot) Snapshot {
		return deleteExerciseFromSession(snap, sessionID, exerciseID)
	})
}

// DeleteSetFromExercise removes one set from one exercise.
func (s *Store) DeleteSetFromExercise(sessionID, exerciseID, setID string) {
	s.apply(func(snap Snapshot) Snapshot {
		return deleteSetFromExercise(snap, sessionID, exerciseID, setID)
	})
}

// apply swaps in the transform's result under the write lock.
func (s *Store) apply(transform func(Snapshot) Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = transform(s.snap)
}

// Pure transforms. Each returns a new snapshot sharing unmodified subtrees
// with the input.

func setSessions(sessions []models.Session) Snapshot {
	copied := make([]models.Session, len(sessions))
	copy(copied, sessions)
	return Snapshot{Sessions: copied, Loaded: true}
}

func addExerciseToSession(snap Snapshot, sessionID string, exercise models.Exercise) Snapshot {
	return mapSession(snap, sessionID, func(sess models.Session) models.Session {
		exercises := make([]models.Exercise, len(sess.Exercises), len(sess.Exercises)+1)
		copy(exercises, sess.Exercises)
		sess.Exercises = append(exercises, exercise)
		return sess
	})
}

func addSetToExercise(snap Snapshot, sessionID, exerciseID string, set models.Set) Snapshot {
	return mapSession(snap, sessionID, func(sess models.Session) models.Session {
		exercises := make([]models.Exercise, len(sess.Exercises))
		copy(exercises, sess.Exercises)
		for i := range exercises {
			if exercises[i].ID != exerciseID {
				continue
			}
			sets := make([]models.Set, len(exercises[i].Sets), len(exercises[i].Sets)+1)
			copy(sets, exercises[i].Sets)
			exercises[i].Sets = append(sets, set)
		}
		sess.Exercises = exercises
		return sess
	})
}

func deleteSession(snap Snapshot, sessionID string) Snapshot {
	if !snap.Loaded {
		return snap
	}
	sessions := make([]models.Session, 0, len(snap.Sessions))
	for _, sess := range snap.Sessions {
		if sess.ID != sessionID {
			sessions = append(sessions, sess)
		}
	}
	return Snapshot{Sessions: sessions, Loaded: true}
}

func deleteExerciseFromSession(snap Snapshot, sessionID, exerciseID string) Snapshot {
	return mapSession(snap, sessionID, func(sess models.Session) models.Session {
		exercises := make([]models.Exercise, 0, len(sess.Exercises))
		for _, ex := range sess.Exercises {
			if ex.ID != exerciseID {
				exercises = append(exercises, ex)
			}
		}
		sess.Exercises = exercises
		return sess
	})
}

func deleteSetFromExercise(snap Snapshot, sessionID, exerciseID, setID string) Snapshot {
	return mapSession(snap, sessionID, func(sess models.Session) models.Session {
		exercises := make([]models.Exercise, len(sess.Exercises))
		copy(exercises, sess.Exercises)
		for i := range exercises {
			if exercises[i].ID != exerciseID {
				continue
			}
			sets := make([]models.Set, 0, len(exercises[i].Sets))
			for _, st := range exercises[i].Sets {
				if st.ID != setID {
					sets = append(sets, st)
				}
			}
			exercises[i].Sets = sets
		}
		sess.Exercises = exercises
		return sess
	})
}

// mapSession rebuilds the session list with fn applied to the session
// matching sessionID. Missing ids and an unloaded cache leave the snapshot
// unchanged.
func mapSession(snap Snapshot, sessionID string, fn func(models.Session) models.Session) Snapshot {
	if !snap.Loaded {
		return snap
	}
	sessions := make([]models.Session, len(snap.Sessions))
	for i, sess := range snap.Sessions {
		if sess.ID == sessionID {
			sessions[i] = fn(sess)
		} else {
			sessions[i] = sess
		}
	}
	return Snapshot{Sessions: sessions, Loaded: true}
}
