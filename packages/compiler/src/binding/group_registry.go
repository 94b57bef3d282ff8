package binding

// GroupRegistry assigns a stable index per distinct group keypath so that
// grouped controls sharing one bound value are tracked as one logical
// collection at run time. One instance per compilation unit, owned by the
// compiler session; entries live for the whole unit and are never removed.
type GroupRegistry struct {
	indexByKeypath map[string]int
	keypaths       []string
}

// NewGroupRegistry creates a new GroupRegistry
func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{
		indexByKeypath: make(map[string]int),
	}
}

// GetGroupIndex returns the index for a keypath, allocating the next
// sequential index on first use. Indices are never reused or compacted.
func (r *GroupRegistry) GetGroupIndex(keypath string) int {
	if index, ok := r.indexByKeypath[keypath]; ok {
		return index
	}
	index := len(r.keypaths)
	r.indexByKeypath[keypath] = index
	r.keypaths = append(r.keypaths, keypath)
	return index
}

// Keypaths returns the registered keypaths in first-seen order
func (r *GroupRegistry) Keypaths() []string {
	out := make([]string, len(r.keypaths))
	copy(out, r.keypaths)
	return out
}

// Len returns the number of distinct groups registered so far
func (r *GroupRegistry) Len() int {
	return len(r.keypaths)
}
