// Package iso20022 provides the constraint-validated message model shared by
// the ISO 20022 message catalogue: facet primitives (length, pattern, numeric
// minimum), the per-entity Validate contract, and decode helpers that pair
// deserialisation with an immediate validation pass.
//
// Every catalogue type implements Validate() error. Validation is fail-fast:
// fields are checked in declaration order, optional absent fields are always
// valid, nested entities and collections are validated recursively, and the
// first violation bubbles unchanged to the caller as a
// *constraint.ValidationError carrying one of the contract codes (1001 too
// short, 1002 too long, 1003 below minimum, 1005 pattern mismatch).
// Validation never mutates the receiver, so the same value can be validated
// repeatedly or concurrently without coordination.
package iso20022
