package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/papapumpkin/launchplot/internal/stats"
)

const (
	pngWidth  = 1600
	pngHeight = 900
)

// writePNG renders p as a step line chart.
func writePNG(w io.Writer, p *Plot, font *truetype.Font) error {
	yMax := math.Max(p.Max()*1.05, 1)
	graph := chart.Chart{
		Title: p.Title,
		TitleStyle: chart.Style{
			FontSize:  20,
			FontColor: drawing.ColorBlack,
		},
		Font:   font,
		Width:  pngWidth,
		Height: pngHeight,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    60,
				Left:   20,
				Right:  20,
				Bottom: 40,
			},
		},
		XAxis: chart.XAxis{
			Name:           "时间",
			NameStyle:      chart.Style{FontSize: 12},
			Style:          chart.Style{FontSize: 10},
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02"),
		},
		YAxis: chart.YAxis{
			Name:      p.YName,
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
			Range:     &chart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return p.Format(f)
				}
				return ""
			},
		},
	}

	for _, s := range p.Series {
		xs, ys := Steps(s.X, s.Y)
		color := hexColor(s.Color)
		graph.Series = append(graph.Series, chart.TimeSeries{
			Name: s.Label,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 3,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", p.Kind, err)
	}
	return nil
}

// writeStatusPNG renders one stacked success/failure bar per group, in
// descending order of launch count.
func writeStatusPNG(w io.Writer, s *stats.Statistics, title string, font *truetype.Font) error {
	okColor := hexColor(s.SuccessColor)
	failColor := hexColor(s.FailureColor)

	graph := chart.StackedBarChart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 20, FontColor: drawing.ColorBlack},
		Font:       font,
		Width:      pngWidth,
		Height:     pngHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 40},
		},
	}
	for _, j := range s.Descending {
		graph.Bars = append(graph.Bars, chart.StackedBar{
			Name: fmt.Sprintf("%s(%d/%d)", s.Groups[j], s.Success[j], s.Overall[j]),
			Values: []chart.Value{
				{Label: "成功", Value: float64(s.Success[j]), Style: chart.Style{FillColor: okColor, StrokeColor: okColor}},
				{Label: "失败", Value: float64(s.Failure[j]), Style: chart.Style{FillColor: failColor, StrokeColor: failColor}},
			},
		})
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering status chart: %w", err)
	}
	return nil
}

// hexColor converts "#RRGGBB" or "#RGB" to a drawing color, black when the
// value is malformed.
func hexColor(hex string) drawing.Color {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 && len(h) != 3 {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(h)
}
