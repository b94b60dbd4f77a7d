package llm

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemory_BoundedWindow(t *testing.T) {
	m := NewConversationMemory()

	for i := 0; i < 8; i++ {
		m.Append(7, Exchange{Prompt: fmt.Sprintf("q%d", i), Reply: fmt.Sprintf("a%d", i)})
	}

	h := m.History(7)
	if len(h) != historyLimit {
		t.Fatalf("expected %d exchanges, got %d", historyLimit, len(h))
	}
	if h[0].Prompt != "q3" || h[len(h)-1].Prompt != "q7" {
		t.Errorf("expected oldest entries dropped, got window %v..%v", h[0].Prompt, h[len(h)-1].Prompt)
	}
}

func TestMemory_PerUserIsolation(t *testing.T) {
	m := NewConversationMemory()
	m.Append(1, Exchange{Prompt: "hello", Reply: "hi"})

	if len(m.History(2)) != 0 {
		t.Error("expected empty history for other user")
	}
	if len(m.History(1)) != 1 {
		t.Error("expected one exchange for user 1")
	}
}

func TestMemory_HistoryReturnsCopy(t *testing.T) {
	m := NewConversationMemory()
	m.Append(1, Exchange{Prompt: "hello", Reply: "hi"})

	h := m.History(1)
	h[0].Reply = "mutated"

	if m.History(1)[0].Reply != "hi" {
		t.Error("expected stored history to be unaffected by caller mutation")
	}
}

func TestMemory_Clear(t *testing.T) {
	m := NewConversationMemory()
	m.Append(1, Exchange{Prompt: "hello", Reply: "hi"})
	m.Clear(1)

	if len(m.History(1)) != 0 {
		t.Error("expected history to be empty after clear")
	}
}

func TestMemory_ConcurrentAppends(t *testing.T) {
	m := NewConversationMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Append(int64(n%4), Exchange{Prompt: "q", Reply: "a"})
		}(i)
	}
	wg.Wait()

	for userID := int64(0); userID < 4; userID++ {
		if got := len(m.History(userID)); got != historyLimit {
			t.Errorf("user %d: expected %d exchanges, got %d", userID, historyLimit, got)
		}
	}
}
