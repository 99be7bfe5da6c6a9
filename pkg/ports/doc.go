/*
Package ports defines the driven ports (interfaces) of the namespace tool.

These interfaces decouple the reconciliation workflow from the registry backend and
from the operator's console, so the core runs unchanged against a YAML file, SQLite,
Redis, a Loam repository or an in-memory fake.

# Key Interfaces

  - Registry: currentMappings/register as seen by the workflow.
  - NamespaceStore: raw persistence underneath a Registry; commits on every Put.
  - Console: the line-oriented operator channel.
*/
package ports
