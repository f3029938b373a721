package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"roomshare-server/models"
)

// RenderListingsPlot writes an HTML geo scatter of listings and the
// viewport corners to w. Debug tooling for eyeballing clamping and
// result spread; never part of a public response.
func RenderListingsPlot(w io.Writer, listings []models.ListingSummary, bounds models.Bounds) error {
	corners := []opts.GeoData{
		{Name: "SW", Value: []float64{bounds.MinLng, bounds.MinLat}},
		{Name: "NW", Value: []float64{bounds.MinLng, bounds.MaxLat}},
		{Name: "NE", Value: []float64{bounds.MaxLng, bounds.MaxLat}},
		{Name: "SE", Value: []float64{bounds.MaxLng, bounds.MinLat}},
		{Name: "SW", Value: []float64{bounds.MinLng, bounds.MinLat}}, // close the polygon
	}

	points := make([]opts.GeoData, 0, len(listings))
	for _, l := range listings {
		points = append(points, opts.GeoData{
			Name:  l.Title,
			Value: []float64{l.Lng, l.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Listings Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Viewport", types.ChartScatter, corners,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Listings", types.ChartScatter, points)

	return geo.Render(w)
}
