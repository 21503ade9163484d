// Package config reads polytope descriptions from gcfg (INI-like) files.
package config

import (
	"sort"
	"strings"

	"github.com/akmonengine/polytope"
	"github.com/akmonengine/polytope/geom"
	"github.com/akmonengine/polytope/halfspace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const ExampleConfig = `[Polytope]

#######################
# Required Parameters #
#######################

# Number of dimensions of the polytope: 2, 3 or 4.
Dimension = 2

#######################
# Optional Parameters #
#######################

# Planar hull algorithm, one of [ graham | giftwrap | incremental ].
# Ignored in 3 and 4 dimensions.
# Algorithm = graham

# Goroutines used to test candidate vertices against the inequalities.
# Workers = 1

# A polytope is described either by points or by inequalities, never both.
# Coordinates and coefficients beyond Dimension must be left out.

# Points: one subsection per point, the hull of all points is built.
# [Point "a"]
# X = 0
# Y = 0

# Inequalities: X*x + Y*y + Z*z + W*w + Const >= 0. The region they bound
# must be bounded.
[Inequality "left"]
X = 1
Const = 0

[Inequality "right"]
X = -1
Const = 1

[Inequality "bottom"]
Y = 1
Const = 0

[Inequality "top"]
Y = -1
Const = 1`

type PolytopeConfig struct {
	// Required
	Dimension int

	// Optional
	Algorithm string
	Workers   int
}

func (con *PolytopeConfig) ValidDimension() bool {
	return con.Dimension >= 2 && con.Dimension <= 4
}
func (con *PolytopeConfig) ValidAlgorithm() bool {
	_, err := polytope.ParseAlgorithm2D(con.Algorithm)
	return err == nil
}
func (con *PolytopeConfig) ValidWorkers() bool {
	return con.Workers > 0
}

type PointConfig struct {
	X, Y, Z, W float64

	// Optional, "undocumented"
	Name string
}

func (p *PointConfig) CheckInit(name string, dimension int) error {
	if err := checkAxes(p.coords(), dimension); err != nil {
		return errors.Errorf("Point '%s': %s", name, err)
	}
	p.Name = name
	return nil
}

func (p *PointConfig) coords() []float64 {
	return []float64{p.X, p.Y, p.Z, p.W}
}

type InequalityConfig struct {
	X, Y, Z, W float64
	Const      float64

	// Optional, "undocumented"
	Name string
}

func (in *InequalityConfig) CheckInit(name string, dimension int) error {
	normal := in.coefficients()
	if err := checkAxes(normal, dimension); err != nil {
		return errors.Errorf("Inequality '%s': %s", name, err)
	}

	zero := true
	for _, c := range normal {
		zero = zero && c == 0
	}
	if zero {
		return errors.Errorf("Inequality '%s' needs at least one non-zero coefficient", name)
	}

	in.Name = name
	return nil
}

func (in *InequalityConfig) coefficients() []float64 {
	return []float64{in.X, in.Y, in.Z, in.W}
}

var axisNames = [4]string{"X", "Y", "Z", "W"}

func checkAxes(values []float64, dimension int) error {
	for axis := dimension; axis < len(values); axis++ {
		if values[axis] != 0 {
			return errors.Errorf("%s is set, but Dimension is %d", axisNames[axis], dimension)
		}
	}
	return nil
}

type Config struct {
	Polytope   PolytopeConfig
	Point      map[string]*PointConfig
	Inequality map[string]*InequalityConfig
}

func DefaultConfig() *Config {
	return &Config{
		Polytope: PolytopeConfig{
			Algorithm: polytope.GrahamScan.String(),
			Workers:   polytope.DefaultWorkers,
		},
	}
}

// Read parses and validates the file fname.
func Read(fname string) (*Config, error) {
	con := DefaultConfig()
	if err := gcfg.ReadFileInto(con, fname); err != nil {
		return nil, err
	}
	return con, con.CheckInit()
}

// Parse parses and validates the file content text.
func Parse(text string) (*Config, error) {
	con := DefaultConfig()
	if err := gcfg.ReadStringInto(con, text); err != nil {
		return nil, err
	}
	return con, con.CheckInit()
}

func (con *Config) CheckInit() error {
	p := &con.Polytope
	p.Algorithm = strings.TrimSpace(p.Algorithm)

	if !p.ValidDimension() {
		return errors.Errorf("Dimension must be one of [2 | 3 | 4], but is %d", p.Dimension)
	} else if !p.ValidAlgorithm() {
		return errors.Errorf("Algorithm must be one of [graham | giftwrap | incremental]. '%s' is not recognized", p.Algorithm)
	} else if !p.ValidWorkers() {
		return errors.Errorf("Workers must be positive, but is %d", p.Workers)
	}

	if len(con.Point) > 0 && len(con.Inequality) > 0 {
		return errors.Errorf("a polytope is given by points or by inequalities, not both")
	} else if len(con.Point) == 0 && len(con.Inequality) == 0 {
		return errors.Errorf("no Point and no Inequality given")
	}

	for _, name := range sortedKeys(con.Point) {
		if err := con.Point[name].CheckInit(name, p.Dimension); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(con.Inequality) {
		if err := con.Inequality[name].CheckInit(name, p.Dimension); err != nil {
			return err
		}
	}
	return nil
}

// HasPoints reports whether the polytope is given by points rather than inequalities.
func (con *Config) HasPoints() bool {
	return len(con.Point) > 0
}

// Builder returns a polytope builder configured by the Polytope section.
func (con *Config) Builder() *polytope.Builder {
	alg, _ := polytope.ParseAlgorithm2D(con.Polytope.Algorithm)
	return &polytope.Builder{Algorithm2D: alg, Workers: con.Polytope.Workers}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Points returns the points sorted by name.
func Points[T geom.Vector[T]](con *Config) []T {
	keys := sortedKeys(con.Point)
	points := make([]T, len(keys))
	for i, k := range keys {
		points[i] = geom.FromComponents[T](con.Point[k].coords())
	}
	return points
}

// Inequalities2D returns the inequalities sorted by name.
func (con *Config) Inequalities2D() []halfspace.Inequality {
	var ins []halfspace.Inequality
	for _, k := range sortedKeys(con.Inequality) {
		in := con.Inequality[k]
		ins = append(ins, halfspace.Inequality{A: in.X, B: in.Y, D: in.Const})
	}
	return ins
}

// Inequalities3D returns the inequalities sorted by name.
func (con *Config) Inequalities3D() []halfspace.PlaneInequality {
	var ins []halfspace.PlaneInequality
	for _, k := range sortedKeys(con.Inequality) {
		in := con.Inequality[k]
		ins = append(ins, halfspace.PlaneInequality{A: in.X, B: in.Y, C: in.Z, D: in.Const})
	}
	return ins
}

// Inequalities4D returns the inequalities sorted by name.
func (con *Config) Inequalities4D() []halfspace.HyperplaneInequality {
	var ins []halfspace.HyperplaneInequality
	for _, k := range sortedKeys(con.Inequality) {
		in := con.Inequality[k]
		ins = append(ins, halfspace.HyperplaneInequality{Normal: mgl64.Vec4{in.X, in.Y, in.Z, in.W}, Offset: in.Const})
	}
	return ins
}
