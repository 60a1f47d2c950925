package valueobjects

import (
	"fmt"
	"strings"
)

// Name represents a user's display name value object
type Name struct {
	value string
}

// NewName creates a new Name value object with validation
func NewName(value string) (*Name, error) {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	if len(trimmed) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}

	return &Name{value: trimmed}, nil
}

// String returns the string representation of the name
func (n *Name) String() string {
	return n.value
}

// Equals checks if two name objects are equal
func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.value == other.value
}
