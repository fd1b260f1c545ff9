package atlas

// Requests accumulates icon names in first-seen order without duplicates.
// The zero value is ready to use. One Requests belongs to one run.
type Requests struct {
	names []string
	seen  map[string]struct{}
}

// Add records name unless it is empty or already present.
func (r *Requests) Add(name string) {
	if name == "" {
		return
	}
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
}

// Names returns the recorded names in insertion order.
func (r *Requests) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of distinct names recorded.
func (r *Requests) Len() int {
	return len(r.names)
}
