package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrainKeepsOrder(t *testing.T) {
	var q Queue
	q.Push(Pointer(1, 2))
	q.Push(Press(KeyW))
	q.Push(Scroll(0, 1))

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []Event{Pointer(1, 2), Press(KeyW), Scroll(0, 1)}, q.Drain())
	assert.Empty(t, q.Drain())
	assert.Equal(t, 0, q.Len())
}

func TestQueueConcurrentPush(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(Pointer(float64(i), 0))
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Drain(), 800)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "Key(99)", Key(99).String())
	assert.Equal(t, "scroll", Scrolled.String())
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}
