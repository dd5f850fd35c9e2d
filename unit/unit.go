// Package unit implements a zero-size placeholder value, used throughout
// this module's task-graph engine to stand in for "no useful value" on
// stages that would otherwise be input-less or void-returning.
package unit

// Unit has exactly one value and carries no information. Its zero value
// is the only value and is always safe to use directly.
type Unit struct{}

// Value is the single inhabitant of Unit, provided for readability at call
// sites that would otherwise need a bare struct literal.
var Value = Unit{}
