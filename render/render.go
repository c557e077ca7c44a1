package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/leiserson/retime/circuit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNilGraph indicates a nil *circuit.Graph was passed to Draw.
var ErrNilGraph = errors.New("render: graph is nil")

const (
	canvasSize  = 10 * vg.Centimeter
	shellRadius = 1.0
)

// Draw renders g as an SVG image to w: vertices placed evenly around a
// ring in g.Vertices() order, each labeled with its key and delay, edges
// drawn as plain lines. Edge weights are not labeled.
func Draw(w io.Writer, g *circuit.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	p := plot.New()
	p.HideAxes()

	pos := shellPositions(g.Vertices())

	for _, e := range g.Edges() {
		line, err := plotter.NewLine(plotter.XYs{pos[e.From], pos[e.To]})
		if err != nil {
			return fmt.Errorf("render: edge %s->%s: %w", e.From, e.To, err)
		}
		p.Add(line)
	}

	xys := make(plotter.XYs, 0, len(g.Vertices()))
	labels := make([]string, 0, len(g.Vertices()))
	for _, v := range g.Vertices() {
		xys = append(xys, pos[v])
		labels = append(labels, fmt.Sprintf("%s (d=%d)", v, g.Delay(v)))
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("render: vertices: %w", err)
	}
	p.Add(scatter)

	textLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("render: labels: %w", err)
	}
	p.Add(textLabels)

	wt, err := p.WriterTo(canvasSize, canvasSize, "svg")
	if err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// shellPositions places vertices evenly around a unit circle in the given
// order, matching networkx.draw_shell's single-shell layout.
func shellPositions(vertices []string) map[string]plotter.XY {
	pos := make(map[string]plotter.XY, len(vertices))
	n := len(vertices)
	for i, v := range vertices {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[v] = plotter.XY{X: shellRadius * math.Cos(theta), Y: shellRadius * math.Sin(theta)}
	}
	return pos
}
