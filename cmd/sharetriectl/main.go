package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	sharetrie "github.com/asdine/go-sharetrie"

	"github.com/urfave/cli/v2"
)

// readVectors reads one vector per line from r, accepting either
// whitespace- or comma-separated int64 components.
func readVectors(r io.Reader) ([]sharetrie.Vector, error) {
	var out []sharetrie.Vector
	rdr := bufio.NewReader(r)
	for {
		l, _, err := rdr.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		line := strings.TrimSpace(string(l))
		if line == "" {
			continue
		}
		v, err := parseVector(line)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseVector(line string) (sharetrie.Vector, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	vals := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		vals = append(vals, n)
	}
	return sharetrie.NewIntVector(vals...), nil
}

func openInput(c *cli.Context) (io.ReadCloser, error) {
	if c.IsSet("input") {
		return os.Open(c.String("input"))
	}
	return io.NopCloser(os.Stdin), nil
}

func loadAntichain(c *cli.Context) (*sharetrie.Antichain, error) {
	f, err := openInput(c)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vectors, err := readVectors(f)
	if err != nil {
		return nil, err
	}
	return sharetrie.NewAntichain(vectors)
}

func main() {
	inputFlag := &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"in", "i"},
		Usage:   "file to read vectors from (default is stdin)",
	}

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "read vectors and print the canonicalized antichain",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					start := time.Now()
					a, err := loadAntichain(c)
					if err != nil {
						return err
					}
					log.Printf("built antichain of %d elements in %s", a.Size(), time.Since(start))
					fmt.Println(a.String())
					return nil
				},
			},
			{
				Name:  "contains",
				Usage: "test whether a vector lies in the downward closure of an antichain",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					a, err := loadAntichain(c)
					if err != nil {
						return err
					}
					test := strings.Join(c.Args().Slice(), " ")
					v, err := parseVector(test)
					if err != nil {
						return err
					}
					fmt.Printf("contains %s: %t\n", test, a.Contains(v))
					return nil
				},
			},
			{
				Name:  "union",
				Usage: "union two antichains read from two input files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "a", Required: true, Usage: "first input file"},
					&cli.StringFlag{Name: "b", Required: true, Usage: "second input file"},
				},
				Action: func(c *cli.Context) error {
					av, err := readVectorsFromPath(c.String("a"))
					if err != nil {
						return err
					}
					bv, err := readVectorsFromPath(c.String("b"))
					if err != nil {
						return err
					}
					a, err := sharetrie.NewAntichain(av)
					if err != nil {
						return err
					}
					b, err := sharetrie.NewAntichain(bv)
					if err != nil {
						return err
					}
					if err := a.UnionWith(b); err != nil {
						return err
					}
					fmt.Println(a.String())
					return nil
				},
			},
			{
				Name:  "intersect",
				Usage: "intersect two antichains read from two input files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "a", Required: true, Usage: "first input file"},
					&cli.StringFlag{Name: "b", Required: true, Usage: "second input file"},
				},
				Action: func(c *cli.Context) error {
					av, err := readVectorsFromPath(c.String("a"))
					if err != nil {
						return err
					}
					bv, err := readVectorsFromPath(c.String("b"))
					if err != nil {
						return err
					}
					a, err := sharetrie.NewAntichain(av)
					if err != nil {
						return err
					}
					b, err := sharetrie.NewAntichain(bv)
					if err != nil {
						return err
					}
					if err := a.IntersectWith(b); err != nil {
						return err
					}
					fmt.Println(a.String())
					return nil
				},
			},
			{
				Name:  "describe",
				Usage: "print dimension, element count, and an arena size estimate for an input file",
				Flags: []cli.Flag{inputFlag},
				Action: func(c *cli.Context) error {
					f, err := openInput(c)
					if err != nil {
						return err
					}
					defer f.Close()
					vectors, err := readVectors(f)
					if err != nil {
						return err
					}
					if len(vectors) == 0 {
						return sharetrie.ErrEmptyInput
					}
					cfg := sharetrie.Config{Dim: vectors[0].Len(), Entries: len(vectors)}
					cfg.Explain()
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func readVectorsFromPath(path string) ([]sharetrie.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readVectors(f)
}
