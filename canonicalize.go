package sharetrie

// canonicalize builds a trie over vectors, drops every vector that is
// strictly dominated by another surviving vector, and rebuilds a trie over
// the remaining antichain of maximal elements.
func canonicalize(vectors []Vector) (*Trie, error) {
	t, err := Build(vectors)
	if err != nil {
		return nil, err
	}
	deduped := t.GetAll()

	survivors := make([]Vector, 0, len(deduped))
	for _, u := range deduped {
		if !t.Dominates(u, true) {
			survivors = append(survivors, u)
		}
	}

	out := &Trie{}
	if err := out.Relabel(survivors); err != nil {
		return nil, err
	}
	return out, nil
}
