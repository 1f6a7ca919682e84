package history

import (
	"fmt"
	"sync"
)

// DefaultCapacity is the per-conversation turn limit.
const DefaultCapacity = 30

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type kind uint8

const (
	kindPrivate kind = iota + 1
	kindGroup
)

// Key identifies exactly one conversation buffer: a private dialog is
// keyed by user ID, a group chat by chat ID. The two scopes never collide.
type Key struct {
	kind kind
	id   int64
}

func Private(userID int64) Key { return Key{kind: kindPrivate, id: userID} }
func Group(chatID int64) Key   { return Key{kind: kindGroup, id: chatID} }

func (k Key) IsGroup() bool { return k.kind == kindGroup }

func (k Key) String() string {
	if k.kind == kindGroup {
		return fmt.Sprintf("group:%d", k.id)
	}
	return fmt.Sprintf("private:%d", k.id)
}

// Turn is one remembered message. Private turns carry Role (user/assistant);
// group turns carry Speaker, because group memory records every participant,
// not just exchanges with the bot.
type Turn struct {
	Role    string
	Speaker string
	Text    string
}

// buffer is a fixed-capacity ring: append is O(1) and overwrites the
// oldest turn once full. Each buffer has its own lock so conversations
// never contend with each other.
type buffer struct {
	mu    sync.Mutex
	turns []Turn
	start int
}

func (b *buffer) append(capacity int, t Turn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.turns) < capacity {
		b.turns = append(b.turns, t)
		return
	}
	b.turns[b.start] = t
	b.start = (b.start + 1) % capacity
}

func (b *buffer) snapshot() []Turn {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Turn, len(b.turns))
	for i := range b.turns {
		out[i] = b.turns[(b.start+i)%len(b.turns)]
	}
	return out
}

type Manager struct {
	capacity int
	mu       sync.RWMutex // guards the bucket map, not the buffers
	buffers  map[Key]*buffer
}

func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity, buffers: make(map[Key]*buffer)}
}

// Append records a turn, creating the buffer lazily on first use.
func (m *Manager) Append(key Key, t Turn) {
	m.mu.RLock()
	b := m.buffers[key]
	m.mu.RUnlock()
	if b == nil {
		m.mu.Lock()
		b = m.buffers[key]
		if b == nil {
			b = &buffer{}
			m.buffers[key] = b
		}
		m.mu.Unlock()
	}
	b.append(m.capacity, t)
}

// Snapshot returns a copy of the buffer in append order. Absent keys
// yield an empty slice; later appends are never reflected in the copy.
func (m *Manager) Snapshot(key Key) []Turn {
	m.mu.RLock()
	b := m.buffers[key]
	m.mu.RUnlock()
	if b == nil {
		return nil
	}
	return b.snapshot()
}

// Reset drops the buffer entirely; a no-op for absent keys.
func (m *Manager) Reset(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.buffers, key)
}
