// Package adaptertest provides in-memory implementations of the adapter interfaces for tests.
package adaptertest

import (
	"context"
	"sort"
	"sync"

	"github.com/sehatin/progress-api/internal/application/adapter"
	"github.com/sehatin/progress-api/internal/domain/entity"
	domainerror "github.com/sehatin/progress-api/internal/domain/error"
)

var (
	_ adapter.GoalRepository         = (*Store)(nil)
	_ adapter.UserProgressRepository = (*ProgressStore)(nil)
	_ adapter.NotificationRepository = (*NotificationStore)(nil)
	_ adapter.Transactor             = (*Store)(nil)
	_ adapter.ProgressCache          = (*Cache)(nil)
)

// Store is an in-memory goal and progress store with snapshot transactions.
// A failed transaction restores the state captured when it began.
type Store struct {
	mu       sync.Mutex
	nextID   uint
	goals    map[uint]entity.Goal
	progress map[int64]entity.UserProgress
	locks    map[int64]int

	// FailProgressUpdate, when set, is returned by every progress Update.
	FailProgressUpdate error

	// MissProgressReads makes that many FindByUserID calls report not found
	// even when the row exists, as a reader racing a concurrent insert sees it.
	MissProgressReads int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		nextID:   1,
		goals:    make(map[uint]entity.Goal),
		progress: make(map[int64]entity.UserProgress),
		locks:    make(map[int64]int),
	}
}

// Progress returns a UserProgressRepository view over the same state.
func (s *Store) Progress() *ProgressStore {
	return &ProgressStore{s: s}
}

// WithinTransaction implements adapter.Transactor.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	goals := make(map[uint]entity.Goal, len(s.goals))
	for k, v := range s.goals {
		goals[k] = v
	}
	progress := make(map[int64]entity.UserProgress, len(s.progress))
	for k, v := range s.progress {
		progress[k] = v
	}
	nextID := s.nextID
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.goals = goals
		s.progress = progress
		s.nextID = nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

// Create implements adapter.GoalRepository.
func (s *Store) Create(_ context.Context, goal *entity.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal.ID = s.nextID
	s.nextID++
	s.goals[goal.ID] = *goal
	return nil
}

// FindByID implements adapter.GoalRepository.
func (s *Store) FindByID(_ context.Context, id uint) (*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return &g, nil
}

// FindByUserID implements adapter.GoalRepository.
func (s *Store) FindByUserID(_ context.Context, userID int64) ([]*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]*entity.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			g := g
			goals = append(goals, &g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

// Update implements adapter.GoalRepository.
func (s *Store) Update(_ context.Context, goal *entity.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	s.goals[goal.ID] = *goal
	return nil
}

// Delete implements adapter.GoalRepository.
func (s *Store) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.goals, id)
	return nil
}

// DeleteByUserID implements adapter.GoalRepository.
func (s *Store) DeleteByUserID(_ context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, g := range s.goals {
		if g.UserID == userID {
			delete(s.goals, id)
			n++
		}
	}
	return n, nil
}

// GoalCount returns the number of stored goals.
func (s *Store) GoalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.goals)
}

// ProgressStore implements adapter.UserProgressRepository on top of a Store.
type ProgressStore struct {
	s *Store
}

// Create implements adapter.UserProgressRepository.
func (p *ProgressStore) Create(_ context.Context, progress *entity.UserProgress) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.progress[progress.UserID]; ok {
		return domainerror.ErrUserProgressAlreadyExists
	}
	p.s.progress[progress.UserID] = *progress
	return nil
}

// FindByUserID implements adapter.UserProgressRepository.
func (p *ProgressStore) FindByUserID(_ context.Context, userID int64) (*entity.UserProgress, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if p.s.MissProgressReads > 0 {
		p.s.MissProgressReads--
		return nil, domainerror.ErrUserProgressNotFound
	}
	return p.find(userID)
}

func (p *ProgressStore) find(userID int64) (*entity.UserProgress, error) {
	up, ok := p.s.progress[userID]
	if !ok {
		return nil, domainerror.ErrUserProgressNotFound
	}
	return &up, nil
}

// LockUser implements adapter.UserProgressRepository. Calls are counted, not enforced.
func (p *ProgressStore) LockUser(_ context.Context, userID int64) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	p.s.locks[userID]++
	return nil
}

// LockCount returns how many times LockUser was called for a user.
func (s *Store) LockCount(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locks[userID]
}

// FindByUserIDForUpdate implements adapter.UserProgressRepository.
func (p *ProgressStore) FindByUserIDForUpdate(_ context.Context, userID int64) (*entity.UserProgress, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	return p.find(userID)
}

// Update implements adapter.UserProgressRepository.
func (p *ProgressStore) Update(_ context.Context, progress *entity.UserProgress) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if p.s.FailProgressUpdate != nil {
		return p.s.FailProgressUpdate
	}
	if _, ok := p.s.progress[progress.UserID]; !ok {
		return domainerror.ErrUserProgressNotFound
	}
	p.s.progress[progress.UserID] = *progress
	return nil
}

// NotificationStore is an in-memory adapter.NotificationRepository.
type NotificationStore struct {
	mu            sync.Mutex
	notifications []entity.Notification
}

// NewNotificationStore creates an empty NotificationStore.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

// Create implements adapter.NotificationRepository.
func (n *NotificationStore) Create(_ context.Context, notification *entity.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = append(n.notifications, *notification)
	return nil
}

// FindByUserID implements adapter.NotificationRepository.
func (n *NotificationStore) FindByUserID(_ context.Context, userID int64) ([]*entity.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	result := make([]*entity.Notification, 0)
	for i := len(n.notifications) - 1; i >= 0; i-- {
		if n.notifications[i].UserID == userID {
			item := n.notifications[i]
			result = append(result, &item)
		}
	}
	return result, nil
}

// Cache is an in-memory adapter.ProgressCache.
type Cache struct {
	mu    sync.Mutex
	items map[int64]entity.UserProgress

	// FailWith, when set, is returned by every operation.
	FailWith error
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{items: make(map[int64]entity.UserProgress)}
}

// Get implements adapter.ProgressCache.
func (c *Cache) Get(_ context.Context, userID int64) (*entity.UserProgress, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.FailWith != nil {
		return nil, c.FailWith
	}
	up, ok := c.items[userID]
	if !ok {
		return nil, nil
	}
	return &up, nil
}

// Set implements adapter.ProgressCache, keeping the entry with the higher version.
func (c *Cache) Set(_ context.Context, progress *entity.UserProgress) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.FailWith != nil {
		return c.FailWith
	}
	if current, ok := c.items[progress.UserID]; ok && !progress.IsNewerThan(&current) {
		return nil
	}
	c.items[progress.UserID] = *progress
	return nil
}

// Evict drops the entry of a user, as a TTL expiry would.
func (c *Cache) Evict(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, userID)
}
