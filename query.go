package sharetrie

import "github.com/bits-and-blooms/bitset"

// Dominates reports whether some vector stored in t satisfies u >= v
// componentwise (or, if strict, additionally u != v).
//
// See SPEC_FULL.md §4.2: this resolves the reference algorithm's strictness
// handling with an explicit per-path discharge flag rather than the
// reference's literal per-level recheck, which is required for a vector
// that ties the query in one coordinate and strictly exceeds it in another
// to correctly count as a strict dominator.
func (t *Trie) Dominates(v Vector, strict bool) bool {
	if v.Len() != t.dim {
		panic(ErrDimensionMismatch)
	}
	if t.root == noIndex {
		return false
	}

	// memo[depth][0] = colors visited at depth with strictness still
	// outstanding; memo[depth][1] = colors visited at depth with strictness
	// already discharged, by an ancestor coordinate or by the node's own.
	memo := make([][2]*bitset.BitSet, t.dim)

	type qframe struct {
		idx          int32
		depth        int
		stillStrict  bool
		mode         frameMode // modeDescend or modeAscendRight, reusing build.go's enum
	}

	stack := []qframe{{t.root, 0, strict, modeDescend}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.mode {
		case modeAscendRight:
			n := t.at(f.idx)
			if n.bro != noIndex {
				stack = append(stack, qframe{n.bro, f.depth, f.stillStrict, modeDescend})
			}
			continue
		}

		n := t.at(f.idx)
		target := v.At(f.depth)

		if n.label < target {
			continue // prune: this node and all its (smaller-label) right siblings fail
		}

		nextStrict := f.stillStrict
		if n.label > target {
			nextStrict = false // strictness discharged for the rest of this path
		}

		if n.son == noIndex {
			// leaf: success unless strictness is still outstanding
			if !nextStrict {
				return true
			}
			continue
		}

		bucket := 0
		if !nextStrict {
			bucket = 1
		}
		if memo[f.depth][bucket] == nil {
			memo[f.depth][bucket] = bitset.New(0)
		}
		colorID := uint(n.color)
		if memo[f.depth][bucket].Test(colorID) {
			// an equivalent subtree already failed at this depth/state: skip
			// it and go on to the right sibling
			if n.bro != noIndex {
				stack = append(stack, qframe{n.bro, f.depth, f.stillStrict, modeDescend})
			}
			continue
		}
		memo[f.depth][bucket].Set(colorID)

		stack = append(stack, qframe{f.idx, f.depth, f.stillStrict, modeAscendRight})
		stack = append(stack, qframe{n.son, f.depth + 1, nextStrict, modeDescend})
	}
	return false
}
