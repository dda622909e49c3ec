package sharetrie

// UnionWith absorbs other into a, keeping the antichain of maximal elements
// of the union of the two downward-closed sets. It consumes other: after
// this call returns (successfully or not), other must not be used again.
func (a *Antichain) UnionWith(other *Antichain) error {
	a.checkLive()
	other.checkLive()

	selfElems := a.trie.backing
	otherElems := other.trie.backing

	result := make([]Vector, 0, len(selfElems)+len(otherElems))
	for _, e := range selfElems {
		if !other.trie.Dominates(e, true) {
			result = append(result, e)
		}
	}
	for _, e := range otherElems {
		if !a.trie.Dominates(e, false) {
			result = append(result, e)
		}
	}

	t := &Trie{}
	if err := t.Relabel(result); err != nil {
		return err
	}
	a.trie = t
	if other != a {
		other.trie = nil
	}
	return nil
}

// IntersectWith replaces a's contents with the antichain of maximal elements
// of the intersection of a and other's downward-closed sets. It borrows
// other: other remains usable after the call returns.
func (a *Antichain) IntersectWith(other *Antichain) error {
	a.checkLive()
	other.checkLive()

	selfElems := make([]Vector, len(a.trie.backing))
	copy(selfElems, a.trie.backing)
	otherTrie := other.trie

	smallerSet := false
	intersection := make([]Vector, 0, len(selfElems))
	for _, x := range selfElems {
		if otherTrie.Dominates(x, false) {
			intersection = append(intersection, x.Copy())
			continue
		}
		for _, y := range otherTrie.backing {
			intersection = append(intersection, x.Meet(y))
		}
		smallerSet = true
	}

	if !smallerSet {
		return nil
	}

	t, err := canonicalize(intersection)
	if err != nil {
		return err
	}
	a.trie = t
	return nil
}
