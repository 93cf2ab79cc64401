package queue

import (
	"fmt"
	"log"
	"sync"
)

const memoryBuffer = 256

// InMemoryQueue is a single-process queue with the same delivery contract
// as the AMQP one: per-channel FIFO, at most once, dropped on handler
// failure. Used by tests and by single-binary runs.
type InMemoryQueue struct {
	mu   sync.Mutex
	subs map[string]chan []byte
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		subs: make(map[string]chan []byte),
	}
}

// Publish sends a message to the channel's subscriber. Messages published
// to a channel nobody subscribed to are an error, matching a missing queue
// on the broker.
func (q *InMemoryQueue) Publish(channel string, body []byte) error {
	q.mu.Lock()
	ch, ok := q.subs[channel]
	q.mu.Unlock()

	if !ok {
		return fmt.Errorf("no subscribers for channel %s", channel)
	}

	select {
	case ch <- body:
		return nil
	default:
		// Subscriber too far behind; at-most-once allows dropping.
		log.Printf("⚠️ channel %s full, dropping message", channel)
		return nil
	}
}

// Subscribe registers the single handler for a channel and starts the
// goroutine that drains it in publish order.
func (q *InMemoryQueue) Subscribe(channel string, handler func(body []byte) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.subs[channel]; ok {
		return fmt.Errorf("channel %s already has a subscriber", channel)
	}

	ch := make(chan []byte, memoryBuffer)
	q.subs[channel] = ch

	go func() {
		for body := range ch {
			if err := handler(body); err != nil {
				log.Printf("⚠️ dropping message on %s: %v", channel, err)
			}
		}
	}()

	return nil
}

// Close stops all subscriber goroutines once their channels drain.
func (q *InMemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for name, ch := range q.subs {
		close(ch)
		delete(q.subs, name)
	}
}

var _ Queue = (*InMemoryQueue)(nil)
