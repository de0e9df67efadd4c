// Package orbit converts free-text orbit descriptions into specific orbital
// energy and ideal delta-v, and combines them with payload mass into total
// orbital energy.
//
// An orbit description holds one leg per payload destination, separated by a
// full-width semicolon. Each leg is read as a C₃ value, a semi-major axis, or
// a perigee/apogee altitude pair, in that order of precedence.
package orbit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Leg separators inside an orbit description.
const (
	LegSeparator      = "；"
	asciiLegSeparator = ";"
)

const (
	c3Scale            = 1e6 // km²/s² -> m²/s²
	kmToM              = 1000
	relativeEnergyUnit = 1e4 // 10 kJ/kg
	totalEnergyDivisor = 1e4 // tonnes*J/kg -> 10 MJ
)

var (
	c3Marker        = regexp.MustCompile(`(?i)C₃|C3`)
	semiMajorMarker = regexp.MustCompile(`(?i)半长轴|semi-major axis`)

	signedNumber   = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?`)
	unsignedNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Result is the evaluated energy summary of one launch.
type Result struct {
	// Legs holds the specific orbital energy of every leg (J/kg).
	Legs []float64
	// SpecificEnergy is the highest leg energy (J/kg).
	SpecificEnergy float64
	// RelativeEnergy is SpecificEnergy above the surface potential, in
	// rounded units of 10 kJ/kg.
	RelativeEnergy int64
	// DeltaV is the highest ideal delta-v across legs, rounded to m/s.
	DeltaV int64
	// TotalEnergy is the mass-weighted relative energy in units of 10 MJ.
	TotalEnergy int64
}

// Calculator evaluates orbit descriptions against a set of Constants.
type Calculator struct {
	c Constants
}

// NewCalculator returns a Calculator bound to c.
func NewCalculator(c Constants) *Calculator {
	return &Calculator{c: c}
}

// Constants returns the constants the calculator was built with.
func (c *Calculator) Constants() Constants { return c.c }

// SplitLegs splits an orbit description into its non-empty legs.
func SplitLegs(desc string) []string {
	desc = strings.ReplaceAll(desc, asciiLegSeparator, LegSeparator)
	var legs []string
	for _, leg := range strings.Split(desc, LegSeparator) {
		if leg = strings.TrimSpace(leg); leg != "" {
			legs = append(legs, leg)
		}
	}
	return legs
}

// SpecificOrbitalEnergy returns the specific orbital energy of every leg of
// desc in J/kg.
func (c *Calculator) SpecificOrbitalEnergy(desc string) ([]float64, error) {
	legs := SplitLegs(desc)
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: empty orbit description", ErrUnparseableOrbit)
	}
	energies := make([]float64, len(legs))
	for i, leg := range legs {
		e, err := c.LegEnergy(leg)
		if err != nil {
			return nil, err
		}
		energies[i] = e
	}
	return energies, nil
}

// LegEnergy returns the specific orbital energy of a single leg in J/kg.
func (c *Calculator) LegEnergy(leg string) (float64, error) {
	text := normalize(leg)

	if rest, ok := after(text, c3Marker); ok {
		v, err := firstSigned(rest)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: C₃ value: %v", ErrUnparseableOrbit, leg, err)
		}
		return v / 2 * c3Scale, nil
	}

	if rest, ok := after(text, semiMajorMarker); ok {
		v, err := firstSigned(rest)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: semi-major axis: %v", ErrUnparseableOrbit, leg, err)
		}
		a := v * kmToM
		if a == 0 {
			return 0, fmt.Errorf("%w: %q: zero semi-major axis", ErrUnparseableOrbit, leg)
		}
		return -c.c.GM / (2 * a), nil
	}

	nums := unsignedNumber.FindAllString(text, 2)
	if len(nums) < 2 {
		return 0, fmt.Errorf("%w: %q: need perigee and apogee altitudes", ErrUnparseableOrbit, leg)
	}
	p1, _ := strconv.ParseFloat(nums[0], 64)
	p2, _ := strconv.ParseFloat(nums[1], 64)
	a := (p1+p2)/2*kmToM + c.c.EarthRadius
	return -c.c.GM / (2 * a), nil
}

// RelativeEnergy returns e above the surface potential in J/kg.
func (c *Calculator) RelativeEnergy(e float64) float64 {
	return e - c.c.SurfacePotential
}

// LegDeltaV returns the ideal delta-v in m/s to reach specific energy e from
// rest at the surface.
func (c *Calculator) LegDeltaV(e float64) (float64, error) {
	arg := 2*e - 2*c.c.SurfacePotential
	if arg < 0 {
		return 0, fmt.Errorf("%w: specific energy %.0f J/kg", ErrBelowSurface, e)
	}
	return math.Sqrt(arg), nil
}

// IdealDeltaV returns the ideal delta-v of every leg.
func (c *Calculator) IdealDeltaV(energies []float64) ([]float64, error) {
	dvs := make([]float64, len(energies))
	for i, e := range energies {
		dv, err := c.LegDeltaV(e)
		if err != nil {
			return nil, err
		}
		dvs[i] = dv
	}
	return dvs, nil
}

// TotalOrbitalEnergy returns the relative energy imparted to the payloads in
// units of 10 MJ. Masses are in tonnes and pair with legs by position when
// the counts match; otherwise the summed mass is charged at the
// highest-energy leg.
func (c *Calculator) TotalOrbitalEnergy(energies, masses []float64) float64 {
	if len(energies) == 0 {
		return 0
	}
	if len(masses) == 0 {
		masses = []float64{0}
	}

	var total float64
	if len(masses) == len(energies) {
		for i, e := range energies {
			total += c.RelativeEnergy(e) * masses[i]
		}
	} else {
		var sum float64
		for _, m := range masses {
			sum += m
		}
		total = c.RelativeEnergy(maxOf(energies)) * sum
	}
	return total / totalEnergyDivisor
}

// Evaluate computes the full energy summary for desc and payload masses.
func (c *Calculator) Evaluate(desc string, masses []float64) (Result, error) {
	energies, err := c.SpecificOrbitalEnergy(desc)
	if err != nil {
		return Result{}, err
	}
	dvs, err := c.IdealDeltaV(energies)
	if err != nil {
		return Result{}, err
	}

	best := maxOf(energies)
	return Result{
		Legs:           energies,
		SpecificEnergy: best,
		RelativeEnergy: int64(math.Round(c.RelativeEnergy(best) / relativeEnergyUnit)),
		DeltaV:         int64(math.Round(maxOf(dvs))),
		TotalEnergy:    int64(math.Round(c.TotalOrbitalEnergy(energies, masses))),
	}, nil
}

// normalize folds full-width digits and punctuation to ASCII and replaces
// the Unicode minus sign.
func normalize(s string) string {
	return strings.ReplaceAll(width.Narrow.String(s), "−", "-")
}

// after returns the text following the leftmost match of marker in s.
func after(s string, marker *regexp.Regexp) (string, bool) {
	loc := marker.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[1]:], true
}

func firstSigned(s string) (float64, error) {
	m := signedNumber.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("no number in %q", s)
	}
	return strconv.ParseFloat(m, 64)
}

func maxOf(vs []float64) float64 {
	best := math.Inf(-1)
	for _, v := range vs {
		if v > best {
			best = v
		}
	}
	return best
}
