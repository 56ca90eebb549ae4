package session

import (
	"context"
	"sync"
	"time"

	"shootbook/internal/domain/entities"
	"shootbook/internal/usecase/interfaces"
)

const subscriberBuffer = 8

type memoryEntry struct {
	session   entities.WizardSession
	expiresAt time.Time
}

// MemoryStore keeps wizard sessions in process. It is meant for tests and
// single-node development; sessions are lost on restart.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
	subs     map[string]map[int]chan entities.WizardSession
	nextSub  int
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
		subs:     make(map[string]map[int]chan entities.WizardSession),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (entities.WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(id)
	if !ok {
		return entities.WizardSession{}, nil
	}
	return cloneSession(e.session), nil
}

func (m *MemoryStore) Save(_ context.Context, s entities.WizardSession) (entities.WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stored int64
	if e, ok := m.lookup(s.ID); ok {
		stored = e.session.Version
	}
	if stored != s.Version {
		return entities.WizardSession{}, interfaces.ErrSessionVersionConflict
	}

	s = cloneSession(s)
	s.Version++
	m.sessions[s.ID] = memoryEntry{session: s, expiresAt: m.now().Add(m.ttl)}

	for _, ch := range m.subs[s.ID] {
		select {
		case ch <- cloneSession(s):
		default:
			// slow subscriber; it keeps its older snapshots
		}
	}
	return cloneSession(s), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	for key, ch := range m.subs[id] {
		close(ch)
		delete(m.subs[id], key)
	}
	delete(m.subs, id)
	return nil
}

// Subscribe streams every snapshot saved after the call. The channel closes
// when the session is deleted, ctx ends or cancel is called.
func (m *MemoryStore) Subscribe(ctx context.Context, id string) (<-chan entities.WizardSession, func(), error) {
	ch := make(chan entities.WizardSession, subscriberBuffer)

	m.mu.Lock()
	key := m.nextSub
	m.nextSub++
	if m.subs[id] == nil {
		m.subs[id] = make(map[int]chan entities.WizardSession)
	}
	m.subs[id][key] = ch
	m.mu.Unlock()

	var once sync.Once
	done := make(chan struct{})
	cancel := func() {
		once.Do(func() {
			close(done)
			m.mu.Lock()
			defer m.mu.Unlock()
			if sub, ok := m.subs[id][key]; ok {
				close(sub)
				delete(m.subs[id], key)
			}
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return ch, cancel, nil
}

// lookup must be called with mu held. Expired entries are dropped.
func (m *MemoryStore) lookup(id string) (memoryEntry, bool) {
	e, ok := m.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if m.ttl > 0 && !m.now().Before(e.expiresAt) {
		delete(m.sessions, id)
		return memoryEntry{}, false
	}
	return e, true
}

func cloneSession(s entities.WizardSession) entities.WizardSession {
	s.Draft = s.Draft.Clone()
	return s
}
