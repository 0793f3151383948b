package squish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func observeAll(m *Map, keys ...string) {
	for _, k := range keys {
		m.Observe(k)
	}
}

func TestTopOrdersByCountThenFirstSeen(t *testing.T) {
	m := New(0)
	observeAll(m, "run", "run", "jump", "run", "fast")

	assert.Equal(t, []Entry{{"run", 3}, {"jump", 1}}, m.Top(2))
	assert.Equal(t, []Entry{{"run", 3}, {"jump", 1}, {"fast", 1}}, m.Top(10))
	assert.Empty(t, m.Top(0))
	assert.Empty(t, m.Top(-1))
}

func TestTieBrokenByFirstSeenNotLastIncrement(t *testing.T) {
	m := New(0)
	observeAll(m, "alpha", "beta", "beta", "alpha")

	assert.Equal(t, []Entry{{"alpha", 2}, {"beta", 2}}, m.Top(2))
}

func TestLimitDropsNewKeysButCounts(t *testing.T) {
	m := New(2)
	observeAll(m, "a", "b", "c", "a", "c")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 5, m.Total())
	assert.Equal(t, 2, m.Count("a"))
	assert.Equal(t, 0, m.Count("c"))
	assert.Equal(t, []string{"a : 2", "b : 1", TooManyTooEnumerate + " : 2"}, m.Dump())
}

func TestEmpty(t *testing.T) {
	m := New(0)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Total())
	assert.Empty(t, m.Top(5))
	assert.Empty(t, m.Dump())
}
