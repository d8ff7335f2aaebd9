package entity

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Fields carries the values submitted in a partial update, keyed by column
// name. A key mapped to nil or an empty string counts as not provided.
type Fields map[string]any
