package permission

import (
	"fmt"

	"github.com/reqtrack/reqtrack/internal/shared/authorization"
)

const (
	ResourceUsers = "users"
	ActionList    = "list"
)

// defaultPolicies are installed on every start. Adding an existing policy is
// a no-op and rows added by operators are left alone.
var defaultPolicies = [][]string{
	{authorization.RoleAdmin.String(), ResourceUsers, ActionList},
}

func (e *Enforcer) InitDefaultPolicies() error {
	for _, p := range defaultPolicies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}
	e.logger.Infow("default permissions initialized", "count", len(defaultPolicies))
	return nil
}
