// Package constraint exposes the facet primitives shared by every generated
// message type: rune-counted length bounds, anchored patterns, inclusive
// numeric minimums, and the code/message violation contract (1001 too short,
// 1002 too long, 1003 below minimum, 1005 pattern mismatch). Implementations
// reside in internal/constraint but the types defined here are the ones
// catalogue packages and downstream callers reference.
package constraint
