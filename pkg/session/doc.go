/*
Package session drives an nsutil run: an optional bulk import followed by the
interactive rename loop.

The Driver reads the live prefix table from a ports.Registry at each checkpoint
(start of the import pass, top of every REPL turn) and hands every candidate to a
reconcile.Reconciler. End-of-input on the console is the only way the loop ends.
*/
package session
