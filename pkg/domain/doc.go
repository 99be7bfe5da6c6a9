/*
Package domain contains the core models of the namespace reconciliation tool.

It is kept free of I/O: a Table is a snapshot handed out by a registry, a Candidate
is one incoming definition, and Classify/Policy hold the only decision rules shared
by every registry backend and by the reconciler.

# Key Entities

  - Table: prefix -> URI snapshot of the registry.
  - Candidate: an incoming (prefix, uri) pair from a bulk source or the REPL.
  - Classification: New, Identical or Conflict, derived by Classify.
  - Outcome: what one reconciliation step did (registered, unchanged, skipped, rejected).
  - Policy: the registry's write rules (NCName prefixes, absolute URIs, built-in bindings).
*/
package domain
