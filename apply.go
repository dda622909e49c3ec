package sharetrie

// Apply maps f over every vector in a's backing and returns a new Antichain
// built from the results. The image of an antichain need not itself be an
// antichain (f may collapse distinct vectors into comparable ones), so the
// result is re-canonicalized. The receiver is not consumed.
func (a *Antichain) Apply(f func(Vector) Vector) (*Antichain, error) {
	a.checkLive()

	mapped := make([]Vector, len(a.trie.backing))
	for i, v := range a.trie.backing {
		mapped[i] = f(v)
	}

	t, err := canonicalize(mapped)
	if err != nil {
		return nil, err
	}
	return &Antichain{trie: t}, nil
}
