package queue_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicrm/mini-crm-be/internal/queue"
)

func TestInMemoryQueueDeliversInPublishOrder(t *testing.T) {
	q := queue.NewInMemoryQueue()
	defer q.Close()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)

	var mu sync.Mutex
	got := []string{}
	require.NoError(t, q.Subscribe("NEW_ORDER", func(body []byte) error {
		defer wg.Done()
		mu.Lock()
		got = append(got, string(body))
		mu.Unlock()
		return nil
	}))

	want := make([]string, 0, n)
	for i := 0; i < n; i++ {
		msg := fmt.Sprintf("order-%d", i)
		want = append(want, msg)
		require.NoError(t, q.Publish("NEW_ORDER", []byte(msg)))
	}

	wg.Wait()
	assert.Equal(t, want, got, "per-channel delivery keeps publish order")
}

func TestInMemoryQueueNoSubscriber(t *testing.T) {
	q := queue.NewInMemoryQueue()
	defer q.Close()

	err := q.Publish("NEW_CAMPAIGN", []byte("{}"))
	assert.Error(t, err)
}

func TestInMemoryQueueHandlerErrorDropsMessageOnly(t *testing.T) {
	q := queue.NewInMemoryQueue()
	defer q.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	handled := []string{}
	require.NoError(t, q.Subscribe("NEW_CAMPAIGN", func(body []byte) error {
		defer wg.Done()
		mu.Lock()
		handled = append(handled, string(body))
		mu.Unlock()
		if string(body) == "bad" {
			return fmt.Errorf("malformed payload")
		}
		return nil
	}))

	require.NoError(t, q.Publish("NEW_CAMPAIGN", []byte("bad")))
	require.NoError(t, q.Publish("NEW_CAMPAIGN", []byte("good")))

	wg.Wait()
	assert.Equal(t, []string{"bad", "good"}, handled, "a failing message must not block the next one")
}

func TestInMemoryQueueSingleSubscriberPerChannel(t *testing.T) {
	q := queue.NewInMemoryQueue()
	defer q.Close()

	require.NoError(t, q.Subscribe("NEW_ORDER", func([]byte) error { return nil }))
	assert.Error(t, q.Subscribe("NEW_ORDER", func([]byte) error { return nil }))
}
