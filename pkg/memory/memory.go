// Package memory keeps bounded per-category history of previously generated
// content so the generator can be biased away from repeating itself.
// The memory only remembers and reports; deciding what counts as a repeat
// is the caller's job.
package memory

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Category names a remembered content dimension
type Category string

// remembered categories
const (
	CategoryTopics   Category = "topics"
	CategoryTitles   Category = "titles"
	CategoryLeads    Category = "leads"
	CategorySubjects Category = "subjects"
)

// per-category capacities, oldest entries evicted first
var defaultCapacities = map[Category]int{
	CategoryTopics:   50,
	CategoryTitles:   30,
	CategoryLeads:    30,
	CategorySubjects: 10,
}

// Categories lists all known categories in a stable order
func Categories() []Category {
	return []Category{CategoryTopics, CategoryTitles, CategoryLeads, CategorySubjects}
}

// DedupMemory is a bounded FIFO history per category. Safe for concurrent use.
type DedupMemory struct {
	mu         sync.Mutex
	entries    map[Category][]string
	capacities map[Category]int
}

// New creates a memory with the default per-category capacities
func New() *DedupMemory {
	caps := make(map[Category]int, len(defaultCapacities))
	for c, n := range defaultCapacities {
		caps[c] = n
	}
	return &DedupMemory{
		entries:    make(map[Category][]string),
		capacities: caps,
	}
}

// Record appends value to the category history, evicting the oldest
// entries beyond capacity. Empty values are ignored.
func (m *DedupMemory) Record(category Category, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := append(m.entries[category], value)
	if capLimit := m.capacity(category); len(entries) > capLimit {
		entries = entries[len(entries)-capLimit:]
	}
	m.entries[category] = entries
}

// AvoidList returns the most recent recentN entries for the category,
// oldest first. It returns at most what is remembered.
func (m *DedupMemory) AvoidList(category Category, recentN int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.entries[category]
	if recentN <= 0 || recentN > len(entries) {
		recentN = len(entries)
	}
	out := make([]string, recentN)
	copy(out, entries[len(entries)-recentN:])
	return out
}

// Seen reports whether value is already remembered in the category,
// compared case-insensitively
func (m *DedupMemory) Seen(category Category, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries[category] {
		if strings.EqualFold(e, value) {
			return true
		}
	}
	return false
}

// Len returns the number of remembered entries for the category
func (m *DedupMemory) Len(category Category) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries[category])
}

// Clear drops all history for one category
func (m *DedupMemory) Clear(category Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, category)
}

// ClearAll drops all history for all categories
func (m *DedupMemory) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[Category][]string)
}

// Snapshot serializes the memory contents for persistence
func (m *DedupMemory) Snapshot() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(m.entries)
	if err != nil {
		return nil, fmt.Errorf("marshal memory: %w", err)
	}
	return data, nil
}

// Restore replaces the memory contents from a Snapshot payload,
// trimming each category to capacity
func (m *DedupMemory) Restore(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	var entries map[Category][]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("unmarshal memory: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[Category][]string)
	for category, values := range entries {
		if capLimit := m.capacity(category); len(values) > capLimit {
			values = values[len(values)-capLimit:]
		}
		m.entries[category] = values
	}
	return nil
}

func (m *DedupMemory) capacity(category Category) int {
	if n, ok := m.capacities[category]; ok {
		return n
	}
	return defaultCapacities[CategoryTitles] // unknown categories get a modest bound
}
