// Package stats aggregates a launch collection into per-group cumulative
// step series.
//
// Every matrix has one column per group. LaunchSteps has one row per launch;
// the success matrices have one row per successful launch. Each row repeats
// the previous row with only the launching group's cell advanced, so a column
// read top to bottom is a step series ready for plotting.
package stats

import (
	"sort"
	"time"

	"github.com/papapumpkin/launchplot/internal/launch"
)

// Statistics is a read-only aggregate over one Collection. Rebuild it when
// the collection changes.
type Statistics struct {
	// Groups holds the sorted unique group labels; column j of every matrix
	// belongs to Groups[j].
	Groups []string
	// Colors holds one hex color per group.
	Colors []string
	// SuccessColor and FailureColor color the status chart bars.
	SuccessColor string
	FailureColor string

	Success      []int // successful launches per group
	Failure      []int // failed launches per group
	Overall      []int // all launches per group
	TotalSuccess int
	TotalFailure int

	// LaunchSteps counts launches, one row per launch.
	LaunchSteps *Matrix
	// EnergySteps sums total orbital energy (10 MJ), one row per success.
	EnergySteps *Matrix
	// RelativeEnergySteps sums relative specific energy (10 kJ/kg).
	RelativeEnergySteps *Matrix
	// DeltaVSteps sums ideal delta-v (m/s).
	DeltaVSteps *Matrix
	// MassSteps sums payload mass (kg).
	MassSteps *Matrix

	// Times holds the time of every launch, aligned with LaunchSteps rows.
	Times []time.Time
	// SuccessTimes holds the time of every success, aligned with the
	// success matrix rows.
	SuccessTimes []time.Time

	// Ascending and Descending order group indices by Overall.
	Ascending  []int
	Descending []int

	index map[string]int
}

// Build aggregates c by group. Records are consumed in collection order,
// which callers keep ascending in time.
func Build(c *launch.Collection, group GroupFunc, palette Palette) *Statistics {
	labels := c.Column(group)
	groups, firstSeen := uniqueLabels(labels)

	s := &Statistics{
		Groups:       groups,
		Colors:       palette.Assign(groups, firstSeen),
		SuccessColor: palette.Success,
		FailureColor: palette.Failure,
		Success:      make([]int, len(groups)),
		Failure:      make([]int, len(groups)),
		Overall:      make([]int, len(groups)),
		index:        make(map[string]int, len(groups)),
	}
	for j, g := range groups {
		s.index[g] = j
	}

	n := c.Len()
	for i := 0; i < n; i++ {
		if c.At(i).Success {
			s.TotalSuccess++
		}
	}
	s.TotalFailure = n - s.TotalSuccess

	cols := len(groups)
	s.LaunchSteps = NewMatrix(n, cols)
	s.EnergySteps = NewMatrix(s.TotalSuccess, cols)
	s.RelativeEnergySteps = NewMatrix(s.TotalSuccess, cols)
	s.DeltaVSteps = NewMatrix(s.TotalSuccess, cols)
	s.MassSteps = NewMatrix(s.TotalSuccess, cols)
	s.Times = make([]time.Time, n)
	s.SuccessTimes = make([]time.Time, 0, s.TotalSuccess)

	k := 0 // success row
	for i := 0; i < n; i++ {
		r := c.At(i)
		j := s.index[labels[i]]
		s.Times[i] = r.Time
		s.Overall[j]++
		s.LaunchSteps.step(i, j, 1)

		if !r.Success {
			s.Failure[j]++
			continue
		}
		s.Success[j]++
		s.EnergySteps.step(k, j, r.TotalEnergy())
		s.RelativeEnergySteps.step(k, j, r.RelativeEnergy())
		s.DeltaVSteps.step(k, j, r.DeltaV())
		s.MassSteps.step(k, j, r.MassKg())
		s.SuccessTimes = append(s.SuccessTimes, r.Time)
		k++
	}

	s.Ascending, s.Descending = orderByOverall(s.Overall)
	return s
}

// Index returns the column of group g.
func (s *Statistics) Index(g string) (int, bool) {
	j, ok := s.index[g]
	return j, ok
}

// Color returns the color assigned to group g.
func (s *Statistics) Color(g string) string {
	if j, ok := s.index[g]; ok {
		return s.Colors[j]
	}
	return ""
}

// uniqueLabels returns the sorted distinct labels and the distinct labels in
// order of first appearance.
func uniqueLabels(labels []string) (sorted, firstSeen []string) {
	seen := make(map[string]bool)
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			firstSeen = append(firstSeen, l)
		}
	}
	sorted = make([]string, len(firstSeen))
	copy(sorted, firstSeen)
	sort.Strings(sorted)
	return sorted, firstSeen
}

// orderByOverall returns group indices sorted by count, ascending and
// descending. Ties keep label order in both.
func orderByOverall(overall []int) (asc, desc []int) {
	asc = make([]int, len(overall))
	for i := range asc {
		asc[i] = i
	}
	desc = make([]int, len(asc))
	copy(desc, asc)

	sort.SliceStable(asc, func(a, b int) bool { return overall[asc[a]] < overall[asc[b]] })
	sort.SliceStable(desc, func(a, b int) bool { return overall[desc[a]] > overall[desc[b]] })
	return asc, desc
}
