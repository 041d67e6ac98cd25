// Package engine resolves the enabled, disabled and visible state of every
// node in a catalog.
//
// All queries are pure functions of the catalog and its UserEnabled flags.
// Nothing is memoised: every query runs a fresh resolution pass over the
// whole catalog, and after every Toggle the caller asks again (Resolve, or
// the individual predicates followed by CreateLinks). The engine never
// pushes notifications.
//
// # Rules
//
//   - A group is satisfied when every id in it names an enabled node.
//     Unknown ids never are (fail closed); an empty group holds vacuously.
//   - A node is disabled when any of its deactivation groups is satisfied.
//   - A node is enabled when it is not disabled and it is user-enabled, or
//     one of its activation groups is satisfied, or it is a requirement
//     revealed by another enabled node.
//   - Choices are always visible. Properties and requirements are visible
//     only while some node revealing them is enabled.
//
// # Resolution
//
// Because deactivation refers back to enabled state, a pass looks for a
// set of disabled nodes D such that, holding D off, the least set of
// enabled nodes E deactivates exactly D. Every predicate then reads the
// same E and D, so the rules above hold between any two queries of one
// pass. Support has to be grounded: a cycle of activation groups or
// requirement reveals with no user selection behind it stays off.
//
// When two user choices deactivate each other more than one such D
// exists. Nodes that are active yet deactivated are blocked one at a time,
// last declared first, so the node declared earlier in the catalog wins.
//
// A selection can also admit no consistent D at all, for instance a
// user-enabled node that deactivates itself, or the search can run out of
// its budget (DefaultSearchLimit, see WithSearchLimit). The pass then
// judges deactivation on raw activity, ignoring deactivation itself, and
// disabled still wins; Snapshot.Consistent reports the fallback and a
// Resolver built with RequireConsistent returns ErrNoConsistentState
// instead.
package engine
