package store

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"hr-dashboard-server/logger"
	"hr-dashboard-server/models"
)

// Store is the single source of truth for the employee list, the bookmark set
// and the feedback log. It is constructed explicitly and passed to whoever
// needs it; there is no package-level instance.
//
// Employees live only in memory and are reloaded from the directory source on
// every process start. Bookmarks and feedback are the durable state: when a
// snapshot file is attached, every mutation of either is written through.
type Store struct {
	mu        sync.RWMutex
	employees []models.Employee
	bookmarks []int
	feedback  []models.Feedback
	rng       *rand.Rand
	snapshot  *SnapshotFile
}

// New creates an empty in-memory store. The seed drives department and rating
// enrichment so a given payload always enriches identically.
func New(seed int64) *Store {
	return &Store{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Open creates a store backed by a snapshot file at path, restoring any
// previously persisted bookmarks and feedback. A missing snapshot is a first
// run; a broken one starts empty with a warning. Neither is fatal.
func Open(seed int64, path string) *Store {
	s := New(seed)
	s.snapshot = NewSnapshotFile(path)

	snap, err := s.snapshot.Load()
	if err != nil {
		logger.Warn("could not restore snapshot from %s: %v", path, err)
		return s
	}
	s.bookmarks = snap.Bookmarks
	s.feedback = snap.Feedback
	return s
}

// SetEmployees replaces the full employee list. Records arriving without a
// department or rating are enriched from the seeded source, in list order.
// An empty list is valid and means no employees are loaded.
func (s *Store) SetEmployees(employees []models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enriched := make([]models.Employee, len(employees))
	for i, e := range employees {
		if e.Department == "" {
			e.Department = models.EnrichmentDepartments[s.rng.Intn(len(models.EnrichmentDepartments))]
		}
		if e.Rating == 0 {
			e.Rating = float64(s.rng.Intn(5) + 1)
		}
		enriched[i] = e
	}
	s.employees = enriched
}

// AddEmployee appends a single employee, assigning the next free identifier
// and, if unset, a rating from the enrichment source. Returns the stored
// record.
func (s *Store) AddEmployee(e models.Employee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.employees {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	e.ID = maxID + 1
	if e.Rating == 0 {
		e.Rating = float64(s.rng.Intn(5) + 1)
	}
	s.employees = append(s.employees, e)
	return e
}

// Employees returns a copy of the employee list in canonical order.
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// EmployeeByID looks up a single employee.
func (s *Store) EmployeeByID(id int) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// EmailExists reports whether any employee already uses the given email.
func (s *Store) EmailExists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.Email == email {
			return true
		}
	}
	return false
}

// Count returns the number of employees loaded.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// AddBookmark inserts id into the bookmark set and reports whether the set
// changed. Idempotent; bookmarking an identifier with no matching employee is
// accepted and inert.
func (s *Store) AddBookmark(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookmarks {
		if b == id {
			return false
		}
	}
	s.bookmarks = append(s.bookmarks, id)
	s.persistLocked()
	return true
}

// RemoveBookmark removes id from the bookmark set and reports whether the set
// changed. Removing a non-member is a no-op, not an error.
func (s *Store) RemoveBookmark(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookmarks {
		if b == id {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// IsBookmarked reports bookmark membership.
func (s *Store) IsBookmarked(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookmarks {
		if b == id {
			return true
		}
	}
	return false
}

// Bookmarks returns the bookmarked identifiers in insertion order.
func (s *Store) Bookmarks() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// BookmarkedEmployees returns the employee records for the bookmark set, in
// bookmark insertion order. Bookmarks pointing at unknown identifiers are
// skipped.
func (s *Store) BookmarkedEmployees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, 0, len(s.bookmarks))
	for _, id := range s.bookmarks {
		for _, e := range s.employees {
			if e.ID == id {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// AddFeedback assigns an identifier and timestamp, appends the entry to the
// feedback log, and recomputes the target employee's rating as the mean of
// all its feedback, rounded to one decimal place. Feedback for an unknown
// employee is still recorded; the rating recompute then has nothing to
// update.
func (s *Store) AddFeedback(entry models.Feedback) models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.Date = time.Now().UTC()
	s.feedback = append(s.feedback, entry)

	sum, count := 0, 0
	for _, f := range s.feedback {
		if f.EmployeeID == entry.EmployeeID {
			sum += f.Rating
			count++
		}
	}
	if count > 0 {
		avg := math.Round(float64(sum)/float64(count)*10) / 10
		for i := range s.employees {
			if s.employees[i].ID == entry.EmployeeID {
				s.employees[i].Rating = avg
			}
		}
	}

	s.persistLocked()
	return entry
}

// FeedbackForEmployee returns a snapshot of all feedback entries for the
// given employee, in insertion order.
func (s *Store) FeedbackForEmployee(id int) []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Feedback, 0)
	for _, f := range s.feedback {
		if f.EmployeeID == id {
			out = append(out, f)
		}
	}
	return out
}

// UpdateEmployeeRating overrides an employee's rating directly, bypassing
// feedback aggregation. Intended for administrative correction.
func (s *Store) UpdateEmployeeRating(id int, rating float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees[i].Rating = rating
			return true
		}
	}
	return false
}

// persistLocked writes the durable state through to the snapshot file, if one
// is attached. Callers must hold the write lock.
func (s *Store) persistLocked() {
	if s.snapshot == nil {
		return
	}
	snap := Snapshot{Bookmarks: s.bookmarks, Feedback: s.feedback}
	if err := s.snapshot.Save(snap); err != nil {
		logger.Error("failed to write snapshot", err)
	}
}
