package sharetrie

import "fmt"

// Vector is the external vector contract consumed by the trie core. Callers
// may supply any implementation; the core never assumes a concrete backing
// representation. Reconstruction (GetAll, canonicalize) goes through New on
// an exemplar already held by the trie, so the type that comes out of a
// Trie is always the same concrete type that went in.
type Vector interface {
	// Len returns the number of components, constant for a given Vector.
	Len() int
	// At returns the component value at index i.
	At(i int) int64
	// Copy returns a deep copy of the vector.
	Copy() Vector
	// New constructs a fresh Vector of the same concrete type from vals,
	// the receiver's own content being irrelevant beyond supplying the
	// type and any representation-specific invariants. This is the Go
	// stand-in for a value_type constructor in a statically-typed
	// template: the trie core never hardcodes a concrete Vector type, but
	// Go offers no way to recover one from an interface value other than
	// asking an existing instance of it to build another. New must copy
	// vals rather than alias it: callers reuse the backing slice they pass
	// in across repeated calls.
	New(vals []int64) Vector
	// Meet returns the componentwise minimum of this vector and other.
	Meet(other Vector) Vector
	// PartialOrder reports whether this vector is componentwise <= other
	// (leq) and componentwise >= other (geq).
	PartialOrder(other Vector) (leq, geq bool)
}

// IntVector is a minimal Vector implementation backed by a plain []int64.
// It exists so this library is directly usable and testable without callers
// having to write their own Vector first; it carries no special status in
// the core's contract.
type IntVector []int64

// NewIntVector returns an IntVector holding a copy of vals.
func NewIntVector(vals ...int64) IntVector {
	out := make(IntVector, len(vals))
	copy(out, vals)
	return out
}

var _ Vector = IntVector(nil)

func (v IntVector) Len() int { return len(v) }

func (v IntVector) At(i int) int64 { return v[i] }

func (v IntVector) Copy() Vector {
	out := make(IntVector, len(v))
	copy(out, v)
	return out
}

// New ignores the receiver's own content and returns a fresh IntVector
// holding a copy of vals.
func (v IntVector) New(vals []int64) Vector {
	return NewIntVector(vals...)
}

func (v IntVector) Meet(other Vector) Vector {
	if other.Len() != len(v) {
		panic(fmt.Sprintf("sharetrie: Meet between vectors of length %d and %d", len(v), other.Len()))
	}
	out := make(IntVector, len(v))
	for i, c := range v {
		o := other.At(i)
		if o < c {
			c = o
		}
		out[i] = c
	}
	return out
}

func (v IntVector) PartialOrder(other Vector) (leq, geq bool) {
	if other.Len() != len(v) {
		panic(fmt.Sprintf("sharetrie: PartialOrder between vectors of length %d and %d", len(v), other.Len()))
	}
	leq, geq = true, true
	for i, c := range v {
		o := other.At(i)
		if c > o {
			leq = false
		}
		if c < o {
			geq = false
		}
		if !leq && !geq {
			return false, false
		}
	}
	return leq, geq
}

func (v IntVector) String() string {
	return fmt.Sprint([]int64(v))
}
