package main

import (
	"fmt"

	sharetrie "github.com/asdine/go-sharetrie"
)

func main() {
	data := [][]int64{
		{6, 3, 2},
		{5, 5, 4},
		{2, 6, 2},
	}

	vectors := make([]sharetrie.Vector, len(data))
	for i, d := range data {
		vectors[i] = sharetrie.NewIntVector(d...)
	}

	a, err := sharetrie.NewAntichain(vectors)
	if err != nil {
		panic(err)
	}

	for _, candidate := range [][]int64{
		{5, 2, 1},
		{6, 3, 2},
		{7, 7, 7},
		{1, 6, 2},
	} {
		v := sharetrie.NewIntVector(candidate...)
		fmt.Printf("%v: %t\n", candidate, a.Contains(v))
	}

	// Print the maximal elements kept after canonicalization.
	fmt.Println(a.String())

	other, err := sharetrie.NewAntichain([]sharetrie.Vector{
		sharetrie.NewIntVector(7, 4, 3),
		sharetrie.NewIntVector(1, 9, 9),
	})
	if err != nil {
		panic(err)
	}

	if err := a.UnionWith(other); err != nil {
		panic(err)
	}
	fmt.Printf("union has %d elements\n", a.Size())
}
