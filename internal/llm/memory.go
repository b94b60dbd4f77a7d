package llm

import "sync"

// historyLimit caps how many past exchanges are replayed per user. Older
// exchanges are discarded, keeping prompt size bounded.
const historyLimit = 5

type Exchange struct {
	Prompt string
	Reply  string
}

// ConversationMemory keeps a bounded window of recent exchanges per user.
// Safe for concurrent use.
type ConversationMemory struct {
	mu      sync.Mutex
	history map[int64][]Exchange
}

func NewConversationMemory() *ConversationMemory {
	return &ConversationMemory{history: make(map[int64][]Exchange)}
}

func (m *ConversationMemory) Append(userID int64, ex Exchange) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := append(m.history[userID], ex)
	if len(h) > historyLimit {
		h = h[len(h)-historyLimit:]
	}
	m.history[userID] = h
}

// History returns a copy of the user's window, oldest first.
func (m *ConversationMemory) History(userID int64) []Exchange {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.history[userID]
	out := make([]Exchange, len(h))
	copy(out, h)
	return out
}

// Clear drops the user's window, for example after a profile reset.
func (m *ConversationMemory) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.history, userID)
}
