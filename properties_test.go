package sharetrie

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

const propertyDim = 4

// randomVectors generates n random vectors of propertyDim components in
// [-bound, bound], using an *rng instance seeded by the caller so each test
// run is reproducible, mirroring the teacher's own fixed-seed convention in
// packed_test.go.
func randomVectors(rng *rand.Rand, n int, bound int64) []Vector {
	out := make([]Vector, n)
	for i := range out {
		vals := make([]int64, propertyDim)
		for j := range vals {
			vals[j] = rng.Int63n(2*bound+1) - bound
		}
		out[i] = NewIntVector(vals...)
	}
	return out
}

// vectorKey builds a dedup/sort key from any Vector implementation, not
// just IntVector, since the core promises to work with a caller's own
// concrete type (see vector.go's Vector doc comment).
func vectorKey(v Vector) string {
	vals := make([]int64, v.Len())
	for i := range vals {
		vals[i] = v.At(i)
	}
	return fmt.Sprint(vals)
}

func dedupKeys(vs []Vector) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range vs {
		k := vectorKey(v)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func TestPropertyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1234)) // intentionally fixed seed
	for trial := 0; trial < 20; trial++ {
		input := randomVectors(rng, 30, 5)
		tr, err := Build(input)
		assert.NoError(t, err)

		got := dedupKeys(tr.GetAll())
		want := dedupKeys(input)
		assert.Equal(t, want, got, "trial %d", trial)
	}
}

func TestPropertyAntichainClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(2345))
	for trial := 0; trial < 20; trial++ {
		input := randomVectors(rng, 30, 5)
		a, err := NewAntichain(input)
		assert.NoError(t, err)
		assert.True(t, a.isAntichain(), "trial %d", trial)
	}
}

func TestPropertyDownwardClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(3456))
	for trial := 0; trial < 10; trial++ {
		input := randomVectors(rng, 20, 4)
		a, err := NewAntichain(input)
		assert.NoError(t, err)

		probes := randomVectors(rng, 30, 5)
		for _, p := range probes {
			want := false
			for _, u := range a.Elements() {
				_, geq := u.PartialOrder(p)
				if geq {
					want = true
					break
				}
			}
			assert.Equal(t, want, a.Contains(p), "trial %d probe %v", trial, p)
		}
	}
}

func TestPropertyStrictness(t *testing.T) {
	rng := rand.New(rand.NewSource(4567))
	for trial := 0; trial < 10; trial++ {
		input := randomVectors(rng, 20, 4)
		tr, err := Build(input)
		assert.NoError(t, err)

		probes := randomVectors(rng, 30, 5)
		for _, p := range probes {
			want := false
			for _, u := range input {
				_, geq := u.PartialOrder(p)
				if geq && !eqVector(u, p) {
					want = true
					break
				}
			}
			assert.Equal(t, want, tr.Dominates(p, true), "trial %d probe %v", trial, p)
		}
	}
}

func TestPropertyUnionAbsorption(t *testing.T) {
	rng := rand.New(rand.NewSource(5678))
	for trial := 0; trial < 10; trial++ {
		av := randomVectors(rng, 15, 4)
		bv := randomVectors(rng, 15, 4)

		a, err := NewAntichain(av)
		assert.NoError(t, err)
		b, err := NewAntichain(bv)
		assert.NoError(t, err)
		bBefore := b.Elements()

		assert.NoError(t, a.UnionWith(b))
		newBacking := a.Elements()

		for _, orig := range bBefore {
			found := containsVector(newBacking, orig)
			if !found {
				dominated := false
				for _, cur := range newBacking {
					_, geq := cur.PartialOrder(orig)
					if geq {
						dominated = true
						break
					}
				}
				assert.True(t, dominated, "trial %d: %v neither kept nor dominated", trial, orig)
			}
		}
	}
}

// TestPropertyConcurrentReadSafety checks property 11: fanning out
// goroutines over read-only operations on an already-built Antichain
// produces answers consistent with sequential calls and must not race
// (run under -race in CI).
func TestPropertyConcurrentReadSafety(t *testing.T) {
	rng := rand.New(rand.NewSource(6789))
	input := randomVectors(rng, 40, 6)
	a, err := NewAntichain(input)
	assert.NoError(t, err)

	probes := randomVectors(rng, 50, 6)
	sequential := make([]bool, len(probes))
	for i, p := range probes {
		sequential[i] = a.Contains(p)
	}

	g, _ := errgroup.WithContext(context.Background())
	concurrent := make([]bool, len(probes))
	for i, p := range probes {
		i, p := i, p
		g.Go(func() error {
			concurrent[i] = a.Contains(p)
			_ = a.trie.GetAll()
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, sequential, concurrent)
}
