package domain

// Rebinding records a prefix whose URI changed between two snapshots.
type Rebinding struct {
	Prefix string
	From   string
	To     string
}

// TableDiff represents the changes between two table snapshots.
// Registries only grow, so there is no removal set.
type TableDiff struct {
	// Added holds prefixes present only in the new snapshot.
	Added map[string]string
	// Rebound holds prefixes bound to a different URI, in prefix order.
	Rebound []Rebinding
}

// Empty reports whether the two snapshots were equal.
func (d *TableDiff) Empty() bool {
	return d == nil || (len(d.Added) == 0 && len(d.Rebound) == 0)
}

// Diff calculates the difference between oldTable and newTable.
// A nil oldTable is treated as empty. Prefixes missing from newTable are
// ignored. Returns nil if nothing changed.
func Diff(oldTable, newTable Table) *TableDiff {
	diff := &TableDiff{}

	for _, prefix := range newTable.Prefixes() {
		uri := newTable[prefix]
		prev, ok := oldTable[prefix]
		switch {
		case !ok:
			if diff.Added == nil {
				diff.Added = make(map[string]string)
			}
			diff.Added[prefix] = uri
		case prev != uri:
			diff.Rebound = append(diff.Rebound, Rebinding{Prefix: prefix, From: prev, To: uri})
		}
	}

	if diff.Empty() {
		return nil
	}
	return diff
}
