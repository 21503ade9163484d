// Command polytope builds convex polytopes described in gcfg files.
//
//	polytope hull square.cfg
//	polytope hull --format=yaml --trace cube.cfg
//	polytope feasible square.cfg
//	polytope example > square.cfg
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akmonengine/polytope"
	"github.com/akmonengine/polytope/config"
	"github.com/akmonengine/polytope/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

var (
	app = kingpin.New("polytope", "Convex hulls and polytopes in 2, 3 and 4 dimensions.")

	hullCmd       = app.Command("hull", "Build the polytope described by a config file.")
	hullFile      = hullCmd.Arg("file", "gcfg file holding points or inequalities.").Required().ExistingFile()
	hullFormat    = hullCmd.Flag("format", "Output format.").Default("text").Enum("text", "json", "yaml")
	hullTrace     = hullCmd.Flag("trace", "Log the incremental hull steps to stderr.").Bool()
	hullAlgorithm = hullCmd.Flag("algorithm", "Override the planar hull algorithm.").Enum("graham", "giftwrap", "incremental")
	hullWorkers   = hullCmd.Flag("workers", "Override the number of workers.").Int()

	feasibleCmd  = app.Command("feasible", "List the vertices of the region bounded by inequalities.")
	feasibleFile = feasibleCmd.Arg("file", "gcfg file holding inequalities.").Required().ExistingFile()

	exampleCmd = app.Command("example", "Print a documented example config file.")
)

func main() {
	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case hullCmd.FullCommand():
		err = runHull(os.Stdout)
	case feasibleCmd.FullCommand():
		err = runFeasible(os.Stdout)
	case exampleCmd.FullCommand():
		fmt.Println(config.ExampleConfig)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("could not build polytope with given inputs: %v", err)))
		os.Exit(1)
	}
}

func runHull(w io.Writer) error {
	con, err := config.Read(*hullFile)
	if err != nil {
		return err
	}

	b := con.Builder()
	if *hullAlgorithm != "" {
		if b.Algorithm2D, err = polytope.ParseAlgorithm2D(*hullAlgorithm); err != nil {
			return err
		}
	}
	if *hullWorkers > 0 {
		b.Workers = *hullWorkers
	}
	if *hullTrace {
		b.Tracer = newTraceLogger(os.Stderr)
	}

	r, err := build(con, b)
	if err != nil {
		return err
	}
	return r.write(w, *hullFormat)
}

func runFeasible(w io.Writer) error {
	con, err := config.Read(*feasibleFile)
	if err != nil {
		return err
	}
	if con.HasPoints() {
		return errors.New("feasible needs inequalities, the file holds points")
	}

	b := con.Builder()
	var points [][]float64
	switch con.Polytope.Dimension {
	case 2:
		points = components(b.DeriveFeasiblePoints2D(con.Inequalities2D()))
	case 3:
		points = components(b.DeriveFeasiblePoints3D(con.Inequalities3D()))
	case 4:
		points = components(b.DeriveFeasiblePoints4D(con.Inequalities4D()))
	}

	for _, p := range points {
		fmt.Fprintln(w, p)
	}
	return nil
}

// build dispatches on the dimension and the kind of description.
func build(con *config.Config, b *polytope.Builder) (*report, error) {
	switch con.Polytope.Dimension {
	case 2:
		var (
			p   *polytope.Polygon
			err error
		)
		if con.HasPoints() {
			p, err = b.FromPoints2D(config.Points[mgl64.Vec2](con))
		} else {
			p, err = b.FromInequalities2D(con.Inequalities2D())
		}
		if err != nil {
			return nil, err
		}
		return polygonReport(p), nil

	case 3:
		var (
			p   *polytope.Polyhedron
			err error
		)
		if con.HasPoints() {
			p, err = b.FromPoints3D(config.Points[mgl64.Vec3](con))
		} else {
			p, err = b.FromInequalities3D(con.Inequalities3D())
		}
		if err != nil {
			return nil, err
		}
		return polyhedronReport(p), nil

	case 4:
		var (
			p   *polytope.Polychoron
			err error
		)
		if con.HasPoints() {
			p, err = b.FromPoints4D(config.Points[mgl64.Vec4](con))
		} else {
			p, err = b.FromInequalities4D(con.Inequalities4D())
		}
		if err != nil {
			return nil, err
		}
		return polychoronReport(p), nil
	}
	return nil, errors.Errorf("unsupported dimension %d", con.Polytope.Dimension)
}

func components[T geom.Vector[T]](points []T) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = geom.Components(p)
	}
	return out
}

// report is the printable form of a polytope.
type report struct {
	Dimension    int           `json:"dimension" yaml:"dimension"`
	Centre       []float64     `json:"centre" yaml:"centre,flow"`
	Vertices     [][]float64   `json:"vertices" yaml:"vertices,flow"`
	Edges        [][][]float64 `json:"edges" yaml:"edges,flow"`
	Faces        [][][]float64 `json:"faces,omitempty" yaml:"faces,omitempty,flow"`
	Cells        [][][]float64 `json:"cells,omitempty" yaml:"cells,omitempty,flow"`
	Inequalities []string      `json:"inequalities" yaml:"inequalities"`
}

func polygonReport(p *polytope.Polygon) *report {
	r := &report{Dimension: 2, Centre: geom.Components(p.Centre()), Vertices: components(p.Vertices)}
	for _, e := range p.Edges {
		r.Edges = append(r.Edges, components([]mgl64.Vec2{e.A, e.B}))
	}
	for _, in := range p.Inequalities {
		r.Inequalities = append(r.Inequalities, in.String())
	}
	return r
}

func polyhedronReport(p *polytope.Polyhedron) *report {
	r := &report{Dimension: 3, Centre: geom.Components(p.Centre()), Vertices: components(p.Vertices)}
	for _, e := range p.Ridges {
		r.Edges = append(r.Edges, components([]mgl64.Vec3{e.A, e.B}))
	}
	for _, f := range p.Faces {
		r.Faces = append(r.Faces, components(f.Points[:]))
	}
	for _, in := range p.Inequalities {
		r.Inequalities = append(r.Inequalities, in.String())
	}
	return r
}

func polychoronReport(p *polytope.Polychoron) *report {
	r := &report{Dimension: 4, Centre: geom.Components(p.Centre()), Vertices: components(p.Vertices)}
	for _, e := range p.Segments {
		r.Edges = append(r.Edges, components([]mgl64.Vec4{e.A, e.B}))
	}
	for _, s := range p.SubFacets {
		r.Faces = append(r.Faces, components(s[:]))
	}
	for _, h := range p.Facets {
		r.Cells = append(r.Cells, components(h.Points[:]))
	}
	for _, in := range p.Inequalities {
		r.Inequalities = append(r.Inequalities, in.String())
	}
	return r
}

func (r *report) write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s %dD, centre %v\n", aurora.Bold("polytope"), r.Dimension, r.Centre)
	fmt.Fprintf(w, "%s (%d)\n", aurora.Cyan("vertices"), len(r.Vertices))
	for _, v := range r.Vertices {
		fmt.Fprintf(w, "  %v\n", v)
	}
	fmt.Fprintf(w, "%s (%d)\n", aurora.Cyan("edges"), len(r.Edges))
	for _, e := range r.Edges {
		fmt.Fprintf(w, "  %v\n", e)
	}
	if len(r.Faces) > 0 {
		fmt.Fprintf(w, "%s (%d)\n", aurora.Cyan("faces"), len(r.Faces))
		for _, f := range r.Faces {
			fmt.Fprintf(w, "  %v\n", f)
		}
	}
	if len(r.Cells) > 0 {
		fmt.Fprintf(w, "%s (%d)\n", aurora.Cyan("cells"), len(r.Cells))
		for _, c := range r.Cells {
			fmt.Fprintf(w, "  %v\n", c)
		}
	}
	fmt.Fprintf(w, "%s (%d)\n", aurora.Cyan("inequalities"), len(r.Inequalities))
	for _, in := range r.Inequalities {
		fmt.Fprintf(w, "  %s\n", in)
	}
	return nil
}

// traceLogger prints the incremental hull steps.
type traceLogger struct {
	log *log.Logger
}

func newTraceLogger(w io.Writer) *traceLogger {
	return &traceLogger{log: log.New(w, "", log.Ltime|log.Lmicroseconds)}
}

func (t *traceLogger) Seed(simplex [][]float64) {
	t.log.Printf("%s %v", aurora.Magenta("seed"), simplex)
}

func (t *traceLogger) Step(point []float64, visible, horizon int) {
	t.log.Printf("%s %v sees %d, horizon %d", aurora.Green("step"), point, visible, horizon)
}

func (t *traceLogger) Drop(point []float64) {
	t.log.Printf("%s %v", aurora.Yellow("drop"), point)
}
