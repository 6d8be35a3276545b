package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lielath/algebra"
	"github.com/katalvlaran/lielath/gellmann"
	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/spherical"
	"github.com/katalvlaran/lielath/spin"
	"github.com/katalvlaran/lielath/structure"
	"github.com/katalvlaran/lielath/sylvester"
)

// families lists the accepted basis names, in help order.
var families = []string{"gellmann", "sylvester", "spherical", "spin"}

// generate builds the named basis. gellmann and sylvester take a dimension
// d; spherical and spin take a spin j such as 1, 1.5 or 3/2.
func generate(family, param string) (string, []*matrix.Dense, error) {
	switch strings.ToLower(family) {
	case "gellmann", "su":
		d, err := strconv.Atoi(param)
		if err != nil {
			return "", nil, fmt.Errorf("dimension %q: %w", param, err)
		}
		b, err := gellmann.Basis(d)
		return fmt.Sprintf("su(%d)", d), b, err
	case "sylvester":
		d, err := strconv.Atoi(param)
		if err != nil {
			return "", nil, fmt.Errorf("dimension %q: %w", param, err)
		}
		b, err := sylvester.Basis(d)
		return fmt.Sprintf("su(%d) sylvester", d), b, err
	case "spherical":
		j, err := parseSpin(param)
		if err != nil {
			return "", nil, err
		}
		b, err := spherical.Basis(j)
		return fmt.Sprintf("spherical j=%s", param), b, err
	case "spin":
		j, err := parseSpin(param)
		if err != nil {
			return "", nil, err
		}
		t, err := spin.SU2(j)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("su(2) spin j=%s", param), t.Basis(), nil
	default:
		return "", nil, fmt.Errorf("unknown basis %q (want one of %s)", family, strings.Join(families, ", "))
	}
}

// parseSpin accepts decimal ("1.5") and fractional ("3/2") spins.
func parseSpin(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("spin %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("spin %q: bad denominator", s)
		}
		return n / d, nil
	}
	j, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("spin %q: %w", s, err)
	}
	return j, nil
}

// build generates the named basis and its tables.
func build(family, param string, opts ...structure.Option) (*algebra.Algebra, error) {
	name, basis, err := generate(family, param)
	if err != nil {
		return nil, err
	}
	return algebra.New(name, basis, opts...)
}
