package sharetrie

// colorAsDFA is Phase C: assigns each node an equivalence-class color such
// that two same-depth nodes share a color iff the sets of suffix vectors
// reachable from them are equal. Layers are processed bottom-up so that a
// node's signature (its label plus its children's already-assigned colors)
// is always computed from final color assignments.
func (t *Trie) colorAsDFA() {
	layers := t.collectLayers()

	nextColor := int32(0)
	for depth := t.dim - 1; depth >= 0; depth-- {
		groups := newSignatureTable(len(layers[depth]))
		for _, idx := range layers[depth] {
			n := t.at(idx)
			sig := t.signatureOf(idx)
			color, ok := groups.lookup(sig)
			if !ok {
				color = nextColor
				nextColor++
				groups.insert(sig, color)
			}
			n.color = color
		}
	}
}

// collectLayers gathers node indices into t.dim layers (layer 0 is the
// root's layer) via an explicit-stack DFS; no recursion is used regardless
// of how deep the trie is.
func (t *Trie) collectLayers() [][]int32 {
	layers := make([][]int32, t.dim)

	type layerFrame struct {
		idx   int32
		depth int
	}
	stack := []layerFrame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		layers[f.depth] = append(layers[f.depth], f.idx)

		n := t.at(f.idx)
		if n.bro != noIndex {
			stack = append(stack, layerFrame{n.bro, f.depth})
		}
		if n.son != noIndex {
			stack = append(stack, layerFrame{n.son, f.depth + 1})
		}
	}
	return layers
}

// signature is the (label, ordered child colors) key that determines a
// node's equivalence class.
type signature struct {
	label       int64
	childColors []int32
}

func (t *Trie) signatureOf(idx int32) signature {
	n := t.at(idx)
	var colors []int32
	for c := n.son; c != noIndex; c = t.at(c).bro {
		colors = append(colors, t.at(c).color)
	}
	return signature{label: n.label, childColors: colors}
}

func signaturesEqual(a, b signature) bool {
	if a.label != b.label || len(a.childColors) != len(b.childColors) {
		return false
	}
	for i := range a.childColors {
		if a.childColors[i] != b.childColors[i] {
			return false
		}
	}
	return true
}

// signatureTable hashes signatures to a bucket with the teacher's inline
// 64-bit murmur mix (see hash.go), then resolves collisions within a bucket
// by exact comparison. This is the same two-level "hash to a bucket, then
// compare exactly" shape the teacher uses for its own quotient-filter
// remainders, just applied to coloring signatures instead of byte strings.
type signatureTable struct {
	buckets map[uint64][]signatureEntry
}

type signatureEntry struct {
	sig   signature
	color int32
}

func newSignatureTable(sizeHint int) *signatureTable {
	return &signatureTable{buckets: make(map[uint64][]signatureEntry, sizeHint)}
}

func (s *signatureTable) lookup(sig signature) (int32, bool) {
	h := hashSignature(sig)
	for _, e := range s.buckets[h] {
		if signaturesEqual(e.sig, sig) {
			return e.color, true
		}
	}
	return 0, false
}

func (s *signatureTable) insert(sig signature, color int32) {
	h := hashSignature(sig)
	s.buckets[h] = append(s.buckets[h], signatureEntry{sig: sig, color: color})
}

// hashSignature encodes a signature as a byte string (label followed by
// each child color, all little-endian) and mixes it with murmurhash64.
func hashSignature(sig signature) uint64 {
	buf := make([]byte, 8+4*len(sig.childColors))
	putUint64(buf[0:8], uint64(sig.label))
	for i, c := range sig.childColors {
		putUint32(buf[8+4*i:12+4*i], uint32(c))
	}
	return murmurhash64(buf)
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func putUint32(b []byte, v uint32) {
	for i := 0; i < 4; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
