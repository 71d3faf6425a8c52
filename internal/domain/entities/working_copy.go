package entities

// WorkingCopyStatus groups the changed paths of a working copy by category.
type WorkingCopyStatus struct {
	NotAdded   []string
	Created    []string
	Deleted    []string
	Modified   []string
	Renamed    []string
	Conflicted []string
}

// HasChanges reports whether any category holds a path.
func (s WorkingCopyStatus) HasChanges() bool {
	return len(s.ChangedPaths()) > 0
}

// HasConflicts reports whether unresolved conflicts exist.
func (s WorkingCopyStatus) HasConflicts() bool {
	return len(s.Conflicted) > 0
}

// ChangedPaths returns every path of every category once, in category order.
func (s WorkingCopyStatus) ChangedPaths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, group := range [][]string{s.NotAdded, s.Created, s.Deleted, s.Modified, s.Renamed, s.Conflicted} {
		for _, path := range group {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}
	return paths
}
