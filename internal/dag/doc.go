// Package dag builds the dependency graph of a catalog and checks it for
// cycles.
//
// Only the relations that the resolution engine follows without a guard
// become edges: activation group members point at the node they activate,
// and every node points at the requirements it reveals. Deactivation is
// left out because mutual exclusion between options is expected and the
// engine terminates on it.
package dag
