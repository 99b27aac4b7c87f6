package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"okane/internal/core"
	"okane/internal/services"
)

// RenderHTML writes an interactive balance chart: a line over the daily
// series with zoom and hover, triangle markers on large transactions and a
// mark line on the reference date.
func RenderHTML(w io.Writer, series []services.SeriesPoint, markers []services.Marker, refDate core.Date) error {
	if len(series) == 0 {
		return fmt.Errorf("render html: empty balance series")
	}

	dates := make([]string, 0, len(series))
	balances := make([]opts.LineData, 0, len(series))
	for _, p := range series {
		dates = append(dates, p.Date.String())
		balances = append(balances, opts.LineData{Value: p.Balance})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "残高推移予測"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "日付"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "残高（円）"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "残高推移予測", Width: "1200px", Height: "600px"}),
	)

	line.SetXAxis(dates).
		AddSeries("残高", balances).
		SetSeriesOptions(
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  "今日",
				XAxis: refDate.String(),
			}),
		)

	scatter := charts.NewScatter()
	scatter.SetXAxis(dates).
		AddSeries("大きな収入", markerData(markers, core.Income)).
		AddSeries("大きな支出", markerData(markers, core.Expense))
	line.Overlap(scatter)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func markerData(markers []services.Marker, kind core.Kind) []opts.ScatterData {
	rotate := 0
	if kind == core.Expense {
		rotate = 180
	}
	var data []opts.ScatterData
	for _, m := range markers {
		if m.Transaction.Kind != kind {
			continue
		}
		data = append(data, opts.ScatterData{
			Name:         fmt.Sprintf("%s %s", m.Transaction.Description, m.Transaction.Amount),
			Value:        []any{m.Transaction.Date.String(), m.Balance},
			Symbol:       "triangle",
			SymbolSize:   14,
			SymbolRotate: rotate,
		})
	}
	return data
}
