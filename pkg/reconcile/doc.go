// Package reconcile classifies one candidate prefix definition against the live
// table and drives the accept/skip/replace decision to a single registry write.
package reconcile
