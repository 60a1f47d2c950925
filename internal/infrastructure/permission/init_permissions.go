package permission

import (
	"fmt"

	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

// defaultPolicies is the centralized permission matrix. Subjects are role
// names; per-user grants are not used. Ownership checks for "own" actions
// happen in the use cases, which know the requester.
var defaultPolicies = [][]string{
	// Regular users manage their own tickets and contribute knowledge base
	// articles they authored
	{"user", "ticket", "create"},
	{"user", "ticket", "read_own"},
	{"user", "ticket", "update_own"},
	{"user", "ticket", "delete_own"},
	{"user", "knowledge", "read"},
	{"user", "knowledge", "create"},
	{"user", "knowledge", "update_own"},
	{"user", "knowledge", "delete_own"},

	// Agents triage every ticket and curate any article
	{"agent", "ticket", "read"},
	{"agent", "ticket", "update"},
	{"agent", "ticket", "take"},
	{"agent", "ticket", "delete"},
	{"agent", "knowledge", "update"},
	{"agent", "knowledge", "delete"},

	// Admins additionally manage users
	{"admin", "user", "read"},
	{"admin", "user", "update"},
	{"admin", "user", "delete"},
}

// roleHierarchy declares which roles inherit which. Agents get everything
// users can do; admins get everything agents can do.
var roleHierarchy = [][]string{
	{"agent", "user"},
	{"admin", "agent"},
}

// SeedDefaultPolicies writes the default permission matrix and role
// hierarchy into policy storage. Adding an existing rule is a no-op for
// casbin, so this is safe to run on every startup.
func (e *Enforcer) SeedDefaultPolicies(log logger.Interface) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	for _, grouping := range roleHierarchy {
		if _, err := e.enforcer.AddGroupingPolicy(grouping[0], grouping[1]); err != nil {
			log.Errorw("failed to add role hierarchy rule",
				"error", err,
				"role", grouping[0],
				"inherits", grouping[1])
			return fmt.Errorf("failed to add grouping policy [%s, %s]: %w",
				grouping[0], grouping[1], err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		log.Error("failed to save default policies", "error", err)
		return fmt.Errorf("failed to save default policies: %w", err)
	}

	log.Info("default permission policies initialized")
	return nil
}
