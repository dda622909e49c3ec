package sharetrie

import "errors"

var (
	// ErrEmptyInput is returned when Build or NewAntichain is given zero
	// vectors.
	ErrEmptyInput = errors.New("sharetrie: empty input")
	// ErrDimensionMismatch is returned when an input slice mixes vectors of
	// different lengths. It is also the panic value of Trie.Dominates when a
	// query vector's length disagrees with the trie's dimension.
	ErrDimensionMismatch = errors.New("sharetrie: dimension mismatch")
	// ErrUseAfterConsume is the panic value used when a method is called on
	// an Antichain whose trie has already been absorbed by UnionWith.
	ErrUseAfterConsume = errors.New("sharetrie: use of antichain after it was consumed by UnionWith")
)
