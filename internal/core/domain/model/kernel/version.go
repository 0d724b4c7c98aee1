package kernel

// Versioned carries the optimistic concurrency counter of an aggregate.
// Repositories write with "WHERE id = ? AND version = ?" using Version() and
// store NextVersion(); AdvanceVersion is called once the write succeeded.
type Versioned struct {
	version int
}

func RestoreVersioned(version int) Versioned {
	return Versioned{version: version}
}

func (v *Versioned) Version() int {
	return v.version
}

func (v *Versioned) NextVersion() int {
	return v.version + 1
}

func (v *Versioned) AdvanceVersion() {
	v.version++
}
