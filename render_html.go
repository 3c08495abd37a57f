package gwaskit

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func manhattanChart(m *Manhattan) *charts.Scatter {
	sc := charts.NewScatter()

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Manhattan plot",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: m.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: m.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: m.YLabel, Type: "value", Min: 0, Max: m.YMax}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
	}

	if m.Colour != nil {
		global = append(global, charts.WithVisualMapOpts(opts.VisualMap{
			Type:      "continuous",
			Min:       float32(m.Colour.Min),
			Max:       float32(m.Colour.Max),
			Dimension: "2",
			Text:      []string{"Distance"},
			InRange:   &opts.VisualMapInRange{Color: m.Colour.Stops(8)},
		}))
	}

	sc.SetGlobalOptions(global...)

	// one series per contig, in layout order
	var order []string
	series := make(map[string][]opts.ScatterData)
	for _, p := range m.Points {
		if _, ok := series[p.Group]; !ok {
			order = append(order, p.Group)
		}
		series[p.Group] = append(series[p.Group], opts.ScatterData{
			Value:      []interface{}{p.X, p.Y, p.Distance},
			SymbolSize: int(2*m.PointRadius + 1),
		})
	}
	if len(order) == 0 {
		order = append(order, "")
	}

	for i, name := range order {
		label := name
		if label == "" {
			label = "sites"
		}

		var sopts []charts.SeriesOpts
		if m.Colour == nil {
			sopts = append(sopts, charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColour(m.PointColour)}))
		}
		if i == 0 && m.HasLine {
			sopts = append(sopts,
				charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "Bonferroni", YAxis: m.Line}))
		}

		sc.AddSeries(label, series[name], sopts...)
	}

	return sc
}

func qqChart(q *QQ) *charts.Scatter {
	sc := charts.NewScatter()

	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "QQ plot",
			Width:     "700px",
			Height:    "700px",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Expected " + pvalueLabel, Type: "value", Min: -0.5, Max: q.Max + 0.5}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Observed " + pvalueLabel, Type: "value", Min: -0.5, Max: q.Max + 0.5}),
	)

	data := make([]opts.ScatterData, len(q.Observed))
	for i := range q.Observed {
		data[i] = opts.ScatterData{Value: []interface{}{q.Expected[i], q.Observed[i]}, SymbolSize: 4}
	}

	sc.AddSeries("sites", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColour(blue)}),
		charts.WithMarkLineNameCoordItemOpts(opts.MarkLineNameCoordItem{
			Name:        "expected",
			Coordinate0: []interface{}{0, 0},
			Coordinate1: []interface{}{q.Max, q.Max},
		}),
	)

	return sc
}

func writeHTML(path string, sc *charts.Scatter) error {
	return writeOutput(path, sc.Render)
}
