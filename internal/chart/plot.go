// Package chart renders grouped cumulative statistics as step charts.
//
// A Plot is the format-independent description of one chart: one Series per
// group, each holding the raw step points from January 1 of the first
// launch's year through every launch to the cutoff time. The PNG renderer
// expands the points into explicit steps; the HTML renderer hands them to
// ECharts with end-aligned steps.
package chart

import (
	"fmt"
	"strconv"
	"time"

	"github.com/papapumpkin/launchplot/internal/config"
	"github.com/papapumpkin/launchplot/internal/stats"
)

// Series is one group's step line.
type Series struct {
	Group string
	Label string // group name with its final value, e.g. "中国(42)"
	Color string
	X     []time.Time
	Y     []float64
}

// Plot is a chart ready for rendering.
type Plot struct {
	Kind   string
	Title  string
	YName  string
	Format func(float64) string
	Series []Series
	Start  time.Time
	Cutoff time.Time
}

type kindSpec struct {
	title  string
	yName  string
	format func(float64) string
	matrix func(*stats.Statistics) *stats.Matrix
	times  func(*stats.Statistics) []time.Time
}

var kinds = map[string]kindSpec{
	config.KindCount: {
		title:  "%d年世界航天入轨发射次数统计",
		yName:  "发射次数",
		format: formatCount,
		matrix: func(s *stats.Statistics) *stats.Matrix { return s.LaunchSteps },
		times:  func(s *stats.Statistics) []time.Time { return s.Times },
	},
	config.KindEnergy: {
		title:  "%d年世界航天入轨发射轨道额外能量统计",
		yName:  "能量",
		format: FormatEnergy,
		matrix: func(s *stats.Statistics) *stats.Matrix { return s.EnergySteps },
		times:  successTimes,
	},
	config.KindRelativeEnergy: {
		title:  "%d年世界航天入轨发射比轨道能量统计",
		yName:  "比能量",
		format: scaled(100, "MJ/kg"),
		matrix: func(s *stats.Statistics) *stats.Matrix { return s.RelativeEnergySteps },
		times:  successTimes,
	},
	config.KindDeltaV: {
		title:  "%d年世界航天入轨发射理想速度增量统计",
		yName:  "速度增量",
		format: scaled(1000, "km/s"),
		matrix: func(s *stats.Statistics) *stats.Matrix { return s.DeltaVSteps },
		times:  successTimes,
	},
	config.KindMass: {
		title:  "%d年世界航天入轨载荷质量统计",
		yName:  "质量",
		format: scaled(1000, "t"),
		matrix: func(s *stats.Statistics) *stats.Matrix { return s.MassSteps },
		times:  successTimes,
	},
}

func successTimes(s *stats.Statistics) []time.Time { return s.SuccessTimes }

// NewPlot builds the step series of a cumulative chart kind. Groups appear
// in descending order of launch count. The cutoff is moved forward to the
// last launch when it precedes it.
func NewPlot(kind string, s *stats.Statistics, cutoff time.Time) (*Plot, error) {
	def, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	times := def.times(s)
	if len(times) == 0 {
		return nil, fmt.Errorf("%s chart: %w", kind, ErrNoData)
	}

	start := yearStart(times[0])
	last := times[len(times)-1]
	if cutoff.Before(last) {
		cutoff = last
	}
	if !cutoff.After(start) {
		cutoff = start.Add(24 * time.Hour)
	}

	m := def.matrix(s)
	p := &Plot{
		Kind:   kind,
		Title:  fmt.Sprintf(def.title, start.Year()),
		YName:  def.yName,
		Format: def.format,
		Start:  start,
		Cutoff: cutoff,
	}
	for _, j := range s.Descending {
		col := m.Column(j)
		x := make([]time.Time, 0, len(times)+2)
		y := make([]float64, 0, len(times)+2)
		x = append(x, start)
		y = append(y, 0)
		for i, t := range times {
			x = append(x, t)
			y = append(y, float64(col[i]))
		}
		final := y[len(y)-1]
		x = append(x, cutoff)
		y = append(y, final)

		p.Series = append(p.Series, Series{
			Group: s.Groups[j],
			Label: fmt.Sprintf("%s(%s)", s.Groups[j], def.format(final)),
			Color: s.Colors[j],
			X:     x,
			Y:     y,
		})
	}
	return p, nil
}

// Max returns the largest value over all series.
func (p *Plot) Max() float64 {
	var m float64
	for _, s := range p.Series {
		for _, v := range s.Y {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// Steps expands raw step points so that each value holds until the next
// point, as a post-step line drawn point to point.
func Steps(x []time.Time, y []float64) ([]time.Time, []float64) {
	if len(x) == 0 {
		return nil, nil
	}
	xs := make([]time.Time, 0, 2*len(x)-1)
	ys := make([]float64, 0, 2*len(y)-1)
	xs = append(xs, x[0])
	ys = append(ys, y[0])
	for i := 1; i < len(x); i++ {
		xs = append(xs, x[i], x[i])
		ys = append(ys, y[i-1], y[i])
	}
	return xs, ys
}

// FormatEnergy formats a total energy in units of 10 MJ as terajoules with
// three significant digits.
func FormatEnergy(v float64) string {
	tj := float64(int64(v/100000*100+0.5)) / 100
	return strconv.FormatFloat(tj, 'g', 3, 64) + "TJ"
}

func formatCount(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}

func scaled(div float64, unit string) func(float64) string {
	return func(v float64) string {
		return strconv.FormatFloat(v/div, 'g', 3, 64) + unit
	}
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}
