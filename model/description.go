package model

import "github.com/google/uuid"

// DescriptionNode is a free-text description with its own identity.
type DescriptionNode struct {
	valueNode
}

// NewDescriptionNode assigns a fresh UUID and stores value in one step.
func NewDescriptionNode(value string) *DescriptionNode {
	return &DescriptionNode{
		valueNode: valueNode{
			node:  node{uuid: uuid.NewString()},
			value: NewValue(value),
		},
	}
}

// DatabaseHostNode carries the host name of a database connection.
type DatabaseHostNode struct {
	valueNode
}

// NewDatabaseHostNode creates a host node; an empty host leaves the value unbound.
func NewDatabaseHostNode(host string) *DatabaseHostNode {
	return &DatabaseHostNode{valueNode: valueNode{value: optionalValue(host)}}
}
