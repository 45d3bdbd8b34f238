package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEachVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 1000
	var seen [n]int32
	ForEach(n, 7, 4, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		assert.Equal(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestForEachSerialFallback(t *testing.T) {
	const n = 10
	var seen [n]int32
	ForEach(n, 100, 1, func(i int) {
		seen[i] = 1
	})
	for _, v := range seen {
		assert.Equal(t, int32(1), v)
	}
}

func TestForEachEmptyRange(t *testing.T) {
	calls := 0
	ForEach(0, 4, 4, func(i int) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestInvokeRunsAll(t *testing.T) {
	var a, b, c int32
	Invoke(
		func() { atomic.StoreInt32(&a, 1) },
		func() { atomic.StoreInt32(&b, 1) },
		func() { atomic.StoreInt32(&c, 1) },
	)
	assert.Equal(t, int32(1), a)
	assert.Equal(t, int32(1), b)
	assert.Equal(t, int32(1), c)
}

func TestCallCounterConcurrentAdds(t *testing.T) {
	var counter CallCounter
	ForEach(1000, 10, 8, func(i int) {
		counter.Add(1)
	})
	assert.Equal(t, int64(1000), counter.Load())
}
