package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Plan is the outcome of reconciling a manifest with its lockfile.
type Plan struct {
	// Changed is true when the manifest fingerprint differed from the lockfile's.
	Changed bool
	// Fingerprint is the manifest fingerprint the lockfile must record.
	Fingerprint string
	Sources     []ResolvedSource
	Diff        Diff
}

// Diff summarises how a resolution differs from the previous lock.
type Diff struct {
	Added     []string
	Updated   []string
	Unchanged []string
	Removed   []string
}

// Empty reports whether the resolution matches the previous lock exactly.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Updated) == 0 && len(d.Removed) == 0
}

// Summary returns one line per kind of change, or a single line counting the
// locked cookbooks in use when nothing changed.
func (d Diff) Summary() []string {
	if d.Empty() {
		return []string{fmt.Sprintf("using %d locked cookbook(s)", len(d.Unchanged))}
	}
	var lines []string
	for _, part := range []struct {
		label string
		names []string
	}{
		{"added", d.Added},
		{"updated", d.Updated},
		{"removed", d.Removed},
	} {
		if len(part.names) > 0 {
			lines = append(lines, fmt.Sprintf("%s: %s", part.label, strings.Join(part.names, ", ")))
		}
	}
	return lines
}

// ComputeDiff compares resolved sources against the entries of lock.
func ComputeDiff(lock *Lockfile, resolved []ResolvedSource) Diff {
	var d Diff
	current := make(map[InternedString]struct{}, len(resolved))
	for _, r := range resolved {
		current[r.Name] = struct{}{}
		prev, ok := lock.Find(r.Name)
		switch {
		case !ok:
			d.Added = append(d.Added, r.Name.String())
		case prev.LockedVersion != r.Version:
			d.Updated = append(d.Updated, r.Name.String())
		default:
			d.Unchanged = append(d.Unchanged, r.Name.String())
		}
	}
	for _, l := range lock.Sources {
		if _, ok := current[l.Name]; !ok {
			d.Removed = append(d.Removed, l.Name.String())
		}
	}
	for _, s := range [][]string{d.Added, d.Updated, d.Unchanged, d.Removed} {
		slices.SortFunc(s, strings.Compare)
	}
	return d
}

// InstallResult reports what an install did.
type InstallResult struct {
	Plan *Plan
	// VendorPath is the absolute vendor directory, empty when nothing was vendored.
	VendorPath string
}
