// Package chart renders the balance trajectory as a static PNG or an
// interactive HTML page. Both renderers consume the engine's daily series
// and large-transaction markers; no balance math happens here.
package chart

import (
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"

	"okane/internal/core"
	"okane/internal/services"
)

// RenderPNG draws the daily balance line with annotations for large
// transactions and a dashed vertical line on the reference date.
func RenderPNG(w io.Writer, series []services.SeriesPoint, markers []services.Marker, refDate core.Date) error {
	if len(series) == 0 {
		return fmt.Errorf("render png: empty balance series")
	}

	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	minY, maxY := float64(series[0].Balance), float64(series[0].Balance)
	for _, p := range series {
		xs = append(xs, p.Date.Time)
		y := float64(p.Balance)
		ys = append(ys, y)
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	annotations := make([]gochart.Value2, 0, len(markers))
	for _, m := range markers {
		annotations = append(annotations, gochart.Value2{
			XValue: gochart.TimeToFloat64(m.Transaction.Date.Time),
			YValue: float64(m.Balance),
			Label:  fmt.Sprintf("%s %s", m.Transaction.Description, m.Transaction.Amount),
		})
	}

	graph := gochart.Chart{
		Width:  1200,
		Height: 600,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return core.FormatYen(int64(f))
				}
				return ""
			},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    "残高",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: gochart.ColorBlue,
					StrokeWidth: 2,
				},
			},
			gochart.TimeSeries{
				Name:    "今日",
				XValues: []time.Time{refDate.Time, refDate.Time},
				YValues: []float64{minY, maxY},
				Style: gochart.Style{
					StrokeColor:     gochart.ColorGreen,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
			gochart.AnnotationSeries{
				Annotations: annotations,
				Style: gochart.Style{
					StrokeColor: gochart.ColorRed,
				},
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
