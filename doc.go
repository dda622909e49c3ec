// Package sharetrie stores downward-closed sets of fixed-dimension integer
// vectors compactly, as the antichain of their maximal elements.
//
// The core data structure is a sharing trie: a label-sorted left-child
// right-sibling tree whose root-to-leaf paths spell the stored vectors, with
// each node additionally carrying an equivalence-class color identifying
// sub-tries that accept the same set of suffix vectors. Colors let dominance
// queries skip over equivalent subtrees without physically collapsing the
// trie into a DAG.
//
// Two layers are exposed:
//
//   - Trie is the low-level sharing trie: construction (Build/Relabel),
//     dominance queries (Dominates) and enumeration (GetAll).
//   - Antichain wraps a Trie and maintains the antichain-of-maximal-elements
//     invariant across Contains, UnionWith, IntersectWith and Apply.
//
// Vectors are supplied by callers through the Vector interface; IntVector is
// a minimal concrete implementation provided for convenience and tests.
package sharetrie
