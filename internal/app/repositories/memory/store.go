// Package memory provides a concurrency-safe in-memory implementation
// of the repository interfaces. It backs the "memory" database driver
// and the test suite; behavior mirrors the postgres implementation,
// including head assignment consistency.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/myurcick/profkomlviv-sub000/internal/app/models"
	"github.com/myurcick/profkomlviv-sub000/internal/app/repositories"
)

// Store holds every entity table behind one lock so multi-entity
// operations (head claims) stay atomic.
type Store struct {
	mu     sync.RWMutex
	nextID int64

	news   map[int64]models.NewsArticle
	team   map[int64]models.TeamMember
	profs  map[int64]models.FacultyUnion
	units  map[int64]models.Unit
	admins map[int64]models.AdminUser
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		news:   make(map[int64]models.NewsArticle),
		team:   make(map[int64]models.TeamMember),
		profs:  make(map[int64]models.FacultyUnion),
		units:  make(map[int64]models.Unit),
		admins: make(map[int64]models.AdminUser),
	}
}

// NewRepositories returns a repository set backed by a fresh Store.
func NewRepositories() *repositories.Repositories {
	s := NewStore()
	return &repositories.Repositories{
		News:  &newsRepo{s},
		Team:  &teamRepo{s},
		Prof:  &profRepo{s},
		Unit:  &unitRepo{s},
		Admin: &adminRepo{s},
	}
}

// nextSeq must be called with the write lock held.
func (s *Store) nextSeq() int64 {
	s.nextID++
	return s.nextID
}

func sortOrder(order string) bool { // true = descending
	return strings.EqualFold(order, "desc")
}

// applyOrder sorts items by a comparable key with optional direction.
func applyOrder[T any](items []T, desc bool, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
