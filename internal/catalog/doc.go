// Package catalog holds the static node set of a decision graph.
//
// A Catalog is built once from a config.Model and never mutated afterwards,
// with one exception: every Node carries a UserEnabled flag that the
// engine's Toggle operation flips. Relations between nodes (activation
// groups, deactivation groups, reveals) are stored as ids, not pointers, so
// a logically cyclic catalog has no ownership cycles.
package catalog
