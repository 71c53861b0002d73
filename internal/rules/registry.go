package rules

import (
	"fmt"
	"strings"
	"sync"
)

var (
	registry []Rule
	byID     = make(map[string]Rule)
	mu       sync.RWMutex
)

// Register appends r to the rule set. Registration order is scoring order.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byID[r.ID()]; exists {
		panic(fmt.Sprintf("rule %s already registered", r.ID()))
	}
	registry = append(registry, r)
	byID[r.ID()] = r
}

// List returns every registered rule in scoring order.
func List() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}

// Resolve returns the rules named by a comma-separated selector. An empty
// selector means every rule.
func Resolve(selector string) ([]Rule, error) {
	if strings.TrimSpace(selector) == "" {
		return List(), nil
	}

	mu.RLock()
	defer mu.RUnlock()
	var selected []Rule
	for _, id := range strings.Split(selector, ",") {
		id = strings.TrimSpace(id)
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("rule not found: %s", id)
		}
		selected = append(selected, r)
	}
	return selected, nil
}

// MaxDeduction is the sum of every registered rule's points.
func MaxDeduction() int {
	total := 0
	for _, r := range List() {
		total += r.Points()
	}
	return total
}
