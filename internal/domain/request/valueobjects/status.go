package valueobjects

import "fmt"

type Status string

const (
	StatusNew         Status = "new"
	StatusUnderReview Status = "under_review"
	StatusOnHold      Status = "on_hold"
	StatusRejected    Status = "rejected"
	StatusPlanned     Status = "planned"
	StatusDone        Status = "done"
)

var statusLabels = map[Status]string{
	StatusNew:         "新規",
	StatusUnderReview: "検討中",
	StatusOnHold:      "保留",
	StatusRejected:    "却下",
	StatusPlanned:     "実装予定",
	StatusDone:        "完了",
}

var statusByLabel = invert(statusLabels)

// AllStatuses lists the statuses in workflow order.
var AllStatuses = []Status{
	StatusNew, StatusUnderReview, StatusOnHold, StatusRejected, StatusPlanned, StatusDone,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label is the Japanese display name.
func (s Status) Label() string {
	return statusLabels[s]
}

// ParseStatus accepts a status code or its Japanese label.
func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.IsValid() {
		return st, nil
	}
	if st, ok := statusByLabel[s]; ok {
		return st, nil
	}
	return "", fmt.Errorf("invalid status: %s", s)
}

func invert[K ~string](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
