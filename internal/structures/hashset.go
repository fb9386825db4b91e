package structures

// hashSet is the exact membership oracle the probabilistic structures
// are judged against.
type hashSet struct {
	members map[string]struct{}
}

func newHashSet(capacity int) *hashSet {
	return &hashSet{members: make(map[string]struct{}, capacity)}
}

func (h *hashSet) Add(username string) {
	h.members[username] = struct{}{}
}

func (h *hashSet) Contains(username string) bool {
	_, ok := h.members[username]
	return ok
}
