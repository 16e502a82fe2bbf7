package dashboard

import (
	"errors"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var errNoChart = errors.New("no chart to render")

// NewLineChart builds the temperature trend line chart: one series per
// chart series, plotted over the weekday labels in their given order.
func NewLineChart(ch *Chart) (*charts.Line, error) {
	if ch == nil {
		return nil, errNoChart
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: ch.Title,
			Width:     "100%",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{Title: ch.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: ch.YAxis}),
	)

	line.SetXAxis(ch.Labels)
	for _, s := range ch.Series {
		data := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			data = append(data, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	return line, nil
}

// RenderChart writes the chart as a standalone HTML page.
func RenderChart(w io.Writer, ch *Chart) error {
	line, err := NewLineChart(ch)
	if err != nil {
		return err
	}
	return line.Render(w)
}
