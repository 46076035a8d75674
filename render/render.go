// Package render draws a classified grid as a self-contained HTML chart.
// Each color bucket becomes its own scatter series so the legend doubles as
// the classification key.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/meteogrid/idw/geojson"
	"github.com/meteogrid/idw/spatial"
)

// fallbackColor is used for cells the classifier left uncolored.
const fallbackColor = "#9e9e9e"

// ChartOptions configures the rendered chart.
type ChartOptions struct {
	Title         string
	Property      string // attribute plotted in tooltips; default "elevation"
	ColorProperty string // attribute the cell color is read from; default "color"
	Width         string // CSS size; default "900px"
	Height        string // CSS size; default "600px"
	SymbolSize    float32 // default 8
}

// Scatter renders the collection as a lon/lat scatter chart, one point per
// cell at its representative location, grouped into series by color.
func Scatter(fc *geojson.FeatureCollection, o ChartOptions, w io.Writer) error {
	if fc == nil || len(fc.Features) == 0 {
		return fmt.Errorf("render: empty feature collection")
	}
	if o.Property == "" {
		o.Property = "elevation"
	}
	if o.ColorProperty == "" {
		o.ColorProperty = "color"
	}
	if o.Width == "" {
		o.Width = "900px"
	}
	if o.Height == "" {
		o.Height = "600px"
	}
	if o.SymbolSize == 0 {
		o.SymbolSize = 8
	}

	series := make(map[string][]opts.ScatterData)
	var order []string
	for _, f := range fc.Features {
		loc := spatial.RepresentativeLocation(f)
		value, _ := f.NumberProperty(o.Property)

		color := fallbackColor
		if c, ok := f.Properties[o.ColorProperty].(string); ok && c != "" {
			color = c
		}
		if _, seen := series[color]; !seen {
			order = append(order, color)
		}
		series[color] = append(series[color], opts.ScatterData{
			Value: []interface{}{loc.Lon(), loc.Lat(), value},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "lon", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "lat", Type: "value"}),
	)

	for _, color := range order {
		scatter.AddSeries(color, series[color],
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: o.SymbolSize}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
	}

	return scatter.Render(w)
}
