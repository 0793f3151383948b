package squish

import (
	"fmt"
	"sort"
)

// New returns a Map that stops storing new keys once limit distinct keys have
// been seen. Observations of dropped keys still count towards Total.
// A limit <= 0 means no limit.
func New(limit int) *Map {
	return &Map{
		limit:  limit,
		counts: make(map[string]int),
	}
}

// Like a regular counting map, but remembers the order in which keys were first seen
type Map struct {
	limit  int
	counts map[string]int
	order  []string
	total  int
}

// Entry is a key and its count
type Entry struct {
	Key   string
	Count int
}

// Observe records one occurrence of key
func (m *Map) Observe(key string) {
	m.total++
	if _, ok := m.counts[key]; ok {
		m.counts[key]++
		return
	}
	if m.limit > 0 && len(m.order) >= m.limit {
		return
	}
	m.counts[key] = 1
	m.order = append(m.order, key)
}

func (m *Map) Count(key string) int {
	return m.counts[key]
}

// Len is the number of distinct keys stored
func (m *Map) Len() int {
	return len(m.order)
}

// Total is the number of observations, including those of keys dropped by the limit
func (m *Map) Total() int {
	return m.total
}

// Top returns at most n entries by descending count. Ties keep first-seen order.
func (m *Map) Top(n int) []Entry {
	entries := make([]Entry, len(m.order))
	for i, k := range m.order {
		entries[i] = Entry{Key: k, Count: m.counts[k]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < 0 {
		n = 0
	}
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

const TooManyTooEnumerate = "㟢"

// Dump renders every key in first-seen order, for debug logging
func (m *Map) Dump() []string {
	acc := make([]string, 0, len(m.order)+1)
	for _, k := range m.order {
		acc = append(acc, fmt.Sprintf("%s : %d", k, m.counts[k]))
	}
	if dropped := m.total - m.stored(); dropped > 0 {
		acc = append(acc, fmt.Sprintf("%s : %d", TooManyTooEnumerate, dropped))
	}
	return acc
}

func (m *Map) stored() int {
	n := 0
	for _, c := range m.counts {
		n += c
	}
	return n
}
