// Command retime is the CLI dispatcher for the retiming analysis engine.
//
// Subcommands:
//
//	retime solve  -algo=opt1|opt2 -in=circuit.json
//	retime gen    -n=20 -p=0.25 -mode=positive|random -seed=1 -out=circuit.json
//	retime render -in=circuit.json -out=circuit.svg
//
// Circuit files are a small JSON document:
//
//	{"vertices":["0","1"],"delays":[0,5],"edges":[{"from":"0","to":"1","weight":1}]}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/leiserson/retime/circuit"
	"github.com/leiserson/retime/gen"
	"github.com/leiserson/retime/opt1"
	"github.com/leiserson/retime/opt2"
	"github.com/leiserson/retime/render"
)

// circuitDoc is the on-disk JSON shape read/written by this command.
type circuitDoc struct {
	Vertices []string           `json:"vertices"`
	Delays   []int64            `json:"delays"`
	Edges    []circuit.EdgeSpec `json:"edges"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "gen":
		err = runGen(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "retime:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: retime <solve|gen|render> [flags]")
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	algo := fs.String("algo", "opt1", "retiming algorithm: opt1 or opt2")
	in := fs.String("in", "", "input circuit JSON path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := loadCircuit(*in)
	if err != nil {
		return err
	}

	var gr *circuit.Graph
	var phi int64
	switch *algo {
	case "opt1":
		gr, phi, err = opt1.Solve(g)
	case "opt2":
		gr, phi, err = opt2.Solve(g)
	default:
		return fmt.Errorf("unknown -algo %q (want opt1 or opt2)", *algo)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Phi* = %d\n", phi)
	return saveCircuit(os.Stdout, gr)
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	n := fs.Int("n", 10, "vertex count")
	p := fs.Float64("p", 0.25, "edge probability")
	mode := fs.String("mode", "positive", "weight mode: positive or random")
	seed := fs.Int64("seed", 1, "rng seed")
	out := fs.String("out", "", "output circuit JSON path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	wm := gen.WeightPositive
	if *mode == "random" {
		wm = gen.WeightRandom
	}

	g, err := gen.Random(*n, *p, wm, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		return saveCircuit(f, g)
	}
	return saveCircuit(w, g)
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "input circuit JSON path")
	out := fs.String("out", "", "output SVG image path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("render: -out is required")
	}

	g, err := loadCircuit(*in)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.Draw(f, g)
}

func loadCircuit(path string) (*circuit.Graph, error) {
	var r *os.File
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var doc circuitDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode circuit: %w", err)
	}
	return circuit.Build(doc.Vertices, doc.Delays, doc.Edges)
}

func saveCircuit(w *os.File, g *circuit.Graph) error {
	delays := make([]int64, g.NumVertices())
	for i, v := range g.Vertices() {
		delays[i] = g.Delay(v)
	}
	edges := make([]circuit.EdgeSpec, g.NumEdges())
	for i, e := range g.Edges() {
		edges[i] = circuit.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}
	doc := circuitDoc{Vertices: g.Vertices(), Delays: delays, Edges: edges}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
