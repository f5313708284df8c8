package viewmodel_test

import (
	"sync"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/stretchr/testify/assert"
)

func TestStateFlow_DeliversEveryTransitionInOrder(t *testing.T) {
	flow := viewmodel.NewStateFlow(0)

	var seen []int
	unsubscribe := flow.Subscribe(func(v int) { seen = append(seen, v) })

	flow.Set(1)
	flow.Update(func(v int) int { return v + 1 })
	flow.Set(3)

	assert.Equal(t, []int{0, 1, 2, 3}, seen, "current value first, then each change")
	assert.Equal(t, 3, flow.Value())

	unsubscribe()
	flow.Set(4)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestStateFlow_ConcurrentUpdates(t *testing.T) {
	flow := viewmodel.NewStateFlow(0)

	var (
		mu   sync.Mutex
		seen []int
	)
	flow.Subscribe(func(v int) {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flow.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, flow.Value())
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 51)
	for i, v := range seen {
		assert.Equal(t, i, v, "transitions arrive in the order they were applied")
	}
}
