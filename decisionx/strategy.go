package decisionx

// Branch asks d on every call and runs the matching function.
func Branch[T any](d Decider, enabled, disabled func() T) T {
	if d.Enabled() {
		return enabled()
	}
	return disabled()
}

// Resolution is the answer of a decision frozen at the time Resolve was called.
type Resolution struct {
	Decision string
	Enabled  bool
}

// Resolve asks d exactly once.
func Resolve(d Decider) Resolution {
	r := Resolution{Enabled: d.Enabled()}
	if n, ok := d.(interface{ Name() string }); ok {
		r.Decision = n.Name()
	}
	return r
}

// Select asks d exactly once and returns the matching behaviour. Callers apply the
// returned value without checking the decision again.
func Select[T any](d Decider, enabled, disabled T) T {
	if d.Enabled() {
		return enabled
	}
	return disabled
}
