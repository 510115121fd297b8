package rewardservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/pg"
)

var errCheckViolation = errors.New("check constraint violated")

// memStore is an in-memory stand-in for the ledger_entries, rewards and users
// tables, including their check constraints.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	entries []domain.LedgerEntry
	aggs    map[int]domain.RewardsAggregate
	users   map[int]domain.User
	rows    map[int]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		aggs:  map[int]domain.RewardsAggregate{},
		users: map[int]domain.User{},
		rows:  map[int]*sync.Mutex{},
	}
}

func (m *memStore) rowLock(userID int) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.rows[userID]
	if !ok {
		l = &sync.Mutex{}
		m.rows[userID] = l
	}
	return l
}

func (m *memStore) addUser(id int, login string, created time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = domain.User{ID: id, Login: login, CreatedAt: created}
}

func (m *memStore) entriesFor(userID int) []domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (m *memStore) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.Points == 0 {
		return errCheckViolation
	}
	m.nextID++
	entry.ID = m.nextID
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)

	id := entry.ID
	onRollback(ctx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i := range m.entries {
			if m.entries[i].ID == id {
				m.entries = append(m.entries[:i], m.entries[i+1:]...)
				return
			}
		}
	})
	return nil
}

func (m *memStore) ListByUserID(_ context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LedgerEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) FindByIdempotencyKey(_ context.Context, userID int, key string) (*domain.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == userID && e.IdempotencyKey == key {
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memStore) SumByUserID(_ context.Context, userID int) (available, lifetime int64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		available += e.Points
		if e.Points > 0 {
			lifetime += e.Points
		}
	}
	return available, lifetime, nil
}

func (m *memStore) CreateAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg := domain.RewardsAggregate{UserID: userID, UpdatedAt: time.Now()}
	m.aggs[userID] = agg
	onRollback(ctx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.aggs, userID)
	})
	return &agg, nil
}

func (m *memStore) GetAggregate(_ context.Context, userID int) (*domain.RewardsAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.aggs[userID]
	if !ok {
		return nil, nil
	}
	return &agg, nil
}

// LockAggregate holds the user's row lock until the surrounding memTX ends.
func (m *memStore) LockAggregate(ctx context.Context, userID int) (*domain.RewardsAggregate, error) {
	if tx := memTxFrom(ctx); tx != nil {
		if _, held := tx.held[userID]; !held {
			l := m.rowLock(userID)
			l.Lock()
			tx.held[userID] = l
		}
	}
	return m.GetAggregate(ctx, userID)
}

func (m *memStore) ApplyDelta(ctx context.Context, userID int, available, lifetime int64) (*domain.RewardsAggregate, error) {
	m.mu.Lock()
	agg, ok := m.aggs[userID]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return m.SetAggregate(ctx, userID, agg.AvailablePoints+available, agg.LifetimePoints+lifetime)
}

func (m *memStore) SetAggregate(ctx context.Context, userID int, available, lifetime int64) (*domain.RewardsAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.aggs[userID]
	if !ok {
		return nil, nil
	}
	if available < 0 || available > lifetime {
		return nil, errCheckViolation
	}
	agg := domain.RewardsAggregate{UserID: userID, AvailablePoints: available, LifetimePoints: lifetime, UpdatedAt: time.Now()}
	m.aggs[userID] = agg
	onRollback(ctx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.aggs[userID] = prev
	})
	return &agg, nil
}

func (m *memStore) TopByLifetimePoints(_ context.Context, n int) ([]domain.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []domain.LeaderboardEntry
	for id, agg := range m.aggs {
		rows = append(rows, domain.LeaderboardEntry{UserID: id, Name: m.users[id].Login, LifetimePoints: agg.LifetimePoints})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.LifetimePoints != b.LifetimePoints {
			return a.LifetimePoints > b.LifetimePoints
		}
		ca, cb := m.users[a.UserID].CreatedAt, m.users[b.UserID].CreatedAt
		if !ca.Equal(cb) {
			return ca.Before(cb)
		}
		return a.UserID < b.UserID
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

type memTxKey struct{}

// memTxState is one open transaction: the row locks it holds and the undo
// steps for its writes, newest last.
type memTxState struct {
	held map[int]*sync.Mutex
	undo []func()
}

func memTxFrom(ctx context.Context) *memTxState {
	tx, _ := ctx.Value(memTxKey{}).(*memTxState)
	return tx
}

func onRollback(ctx context.Context, fn func()) {
	if tx := memTxFrom(ctx); tx != nil {
		tx.undo = append(tx.undo, fn)
	}
}

// memTX models row-level locking: transactions touching different users run
// in parallel, those locking the same user queue behind each other. Nested
// Begin joins the outer transaction; a failed fn has its writes undone.
type memTX struct{}

var _ pg.TXManager = (*memTX)(nil)

func (t *memTX) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if memTxFrom(ctx) != nil {
		return fn(ctx)
	}

	tx := &memTxState{held: map[int]*sync.Mutex{}}
	err := fn(context.WithValue(ctx, memTxKey{}, tx))
	if err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
	}
	for _, l := range tx.held {
		l.Unlock()
	}
	return err
}
