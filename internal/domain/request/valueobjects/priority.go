package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityLabels = map[Priority]string{
	PriorityLow:    "低",
	PriorityMedium: "中",
	PriorityHigh:   "高",
	PriorityUrgent: "緊急",
}

var priorityByLabel = invert(priorityLabels)

var priorityRank = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityLabels[p]
	return ok
}

func (p Priority) Label() string {
	return priorityLabels[p]
}

// Rank orders priorities low < medium < high < urgent. Unknown values sort last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank) + 1
}

// ParsePriority accepts a priority code or its Japanese label.
func ParsePriority(s string) (Priority, error) {
	if p := Priority(s); p.IsValid() {
		return p, nil
	}
	if p, ok := priorityByLabel[s]; ok {
		return p, nil
	}
	return "", fmt.Errorf("invalid priority: %s", s)
}
