/*
Package nsutil reconciles namespace prefix bindings against a registry.

A registry maps short prefixes (dc, foaf, skos) to namespace URIs. nsutil reads
candidate bindings from a bulk file or from the operator and decides, one
candidate at a time, whether to write it:

  - NEW: the prefix is unbound. The operator is asked to confirm.
  - IDENTICAL: the prefix is already bound to the same URI. Nothing happens.
  - CONFLICT: the prefix is bound to another URI. The operator is shown the
    current URI and asked whether to replace it.

After the import the tool lists the table and lets the operator register an
existing URI under an additional prefix, until input ends.

# Packages

  - pkg/domain: the table, candidates, classification and registry policy.
  - pkg/registry: a policy-enforcing registry over a ports.NamespaceStore.
  - pkg/reconcile: one reconciliation step (classify, confirm, register, report).
  - pkg/session: the import pass and the rename loop.
  - pkg/source: bulk file parsing (YAML/JSON mapping or "prefix:uri" lines).
  - pkg/adapters: stores backed by memory, YAML files, SQLite, Redis and Loam.

# Usage

	store := memory.NewStore()
	reg := registry.New(store)
	console := runner.NewTextConsole(os.Stdin, os.Stdout)

	d := session.New(reg, console)
	if err := d.Run(ctx, "namespaces.yaml"); err != nil {
		log.Fatal(err)
	}

The nsutil command (cmd/nsutil) wires the same pieces from flags, environment
and config files.
*/
package nsutil
