package flow

import "fmt"

// MissingCategoryError is returned when a category required to build flows has no transactions
type MissingCategoryError struct {
	Category string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("Expected category not found in transactions: %q", e.Category)
}

// NodeConflictError is returned when a category has the same name as a fixed node or a group
type NodeConflictError struct {
	Category string
}

func (e *NodeConflictError) Error() string {
	return fmt.Sprintf("Category %q has the same name as a node in the flow graph", e.Category)
}
