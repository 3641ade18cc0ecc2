package inmemory

import (
	"context"
	"sync"

	"yatube/internal/model"
)

// DB is the shared state behind every in-memory storage. Cross-entity rules
// (cascades, set null, usernames on reads) need one lock over all tables.
type DB struct {
	mu sync.RWMutex

	users    map[int64]model.User
	byName   map[string]int64
	groups   map[int64]model.Group
	posts    map[int64]model.Post
	comments map[int64]model.Comment
	follows  map[int64]model.Follow

	seq struct {
		user, group, post, comment, follow int64
	}
}

func NewDB() *DB {
	return &DB{
		users:    make(map[int64]model.User),
		byName:   make(map[string]int64),
		groups:   make(map[int64]model.Group),
		posts:    make(map[int64]model.Post),
		comments: make(map[int64]model.Comment),
		follows:  make(map[int64]model.Follow),
	}
}

func (db *DB) username(id int64) string {
	return db.users[id].Username
}

// TxManager serializes transactional blocks. Storages keep their own
// per-call locking, so a block sees a consistent view only against other
// blocks.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
