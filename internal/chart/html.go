package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/papapumpkin/launchplot/internal/stats"
)

const (
	htmlWidth  = "1600px"
	htmlHeight = "900px"
	timeLayout = "2006-01-02 15:04:05"
)

// writeHTML renders p as an interactive ECharts step line page.
func writeHTML(w io.Writer, p *Plot) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: p.Title,
			Width:     htmlWidth,
			Height:    htmlHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    p.Title,
			Subtitle: "截至UTC时间：" + p.Cutoff.Format(timeLayout),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "时间",
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: p.YName,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
			Top:  "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
	)

	for _, s := range p.Series {
		data := make([]opts.LineData, len(s.X))
		for i := range s.X {
			data[i] = opts.LineData{Value: []interface{}{s.X[i].Format(timeLayout), s.Y[i]}}
		}
		line.AddSeries(s.Label, data,
			charts.WithLineChartOpts(opts.LineChart{Step: "end"}),
			charts.WithLineStyleOpts(opts.LineStyle{Width: 3, Color: s.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", p.Kind, err)
	}
	return nil
}

// writeStatusHTML renders stacked success/failure bars per group.
func writeStatusHTML(w io.Writer, s *stats.Statistics, title string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     htmlWidth,
			Height:    htmlHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)

	labels := make([]string, 0, len(s.Groups))
	success := make([]opts.BarData, 0, len(s.Groups))
	failure := make([]opts.BarData, 0, len(s.Groups))
	for _, j := range s.Descending {
		labels = append(labels, s.Groups[j])
		success = append(success, opts.BarData{Value: s.Success[j]})
		failure = append(failure, opts.BarData{Value: s.Failure[j]})
	}

	bar.SetXAxis(labels).
		AddSeries("成功", success,
			charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.SuccessColor})).
		AddSeries("失败", failure,
			charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.FailureColor}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering status chart: %w", err)
	}
	return nil
}
