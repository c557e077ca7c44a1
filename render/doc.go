// Package render draws a circuit.Graph to an image, grounded on the
// original's utils/retiming_utils.py draw_retiming_graph, which lays
// vertices out on a networkx "shell" (a single ring) and labels edges with
// their weight.
//
// Draw reproduces the shell layout directly — vertices placed evenly around
// a circle in Vertices() order — rather than a force-directed layout, since
// a ring is exactly what draw_shell produces for a single-shell call, and it
// keeps the output deterministic across runs (no iterative relaxation to
// seed). Uses gonum.org/v1/plot for the actual drawing.
package render
