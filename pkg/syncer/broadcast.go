package syncer

import (
	"github.com/go-pkgz/lgr"
)

// subscriberBuffer is the per-subscriber channel capacity, a subscriber
// lagging behind this many results starts skipping them
const subscriberBuffer = 8

// Subscribe registers a subscriber receiving every published result.
// Sends never block, slow subscribers skip results.
func (s *Service) Subscribe(id string) <-chan Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Result, subscriberBuffer)
	s.subscribers[id] = ch
	lgr.Printf("[DEBUG] subscriber %s added, %d total", id, len(s.subscribers))
	return ch
}

// Unsubscribe removes a subscriber and closes its channel
func (s *Service) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		close(ch)
		delete(s.subscribers, id)
		lgr.Printf("[DEBUG] subscriber %s removed, %d total", id, len(s.subscribers))
	}
}

// broadcast delivers the result to all subscribers
func (s *Service) broadcast(res Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, ch := range s.subscribers {
		select {
		case ch <- res: // non-blocking send
		default:
			lgr.Printf("[WARN] subscriber %s channel full, result skipped", id)
		}
	}
}
