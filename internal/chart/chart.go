// Package chart projects records into (label, value, color) points for
// presentation.
package chart

import (
	"github.com/AngelCh415/adcompare/internal/models"
)

const NeutralKey = "neutral"

// Palette maps a record's platform label to a stable color key, and color
// keys to the hex color presentation uses.
type Palette struct {
	keys   map[string]string
	colors map[string]string
}

// Platform is one palette entry.
type Platform struct {
	Label    string
	ColorKey string
	Color    string
}

func NewPalette(platforms ...Platform) *Palette {
	p := &Palette{keys: map[string]string{}, colors: map[string]string{NeutralKey: "#9E9E9E"}}
	for _, pl := range platforms {
		if pl.Label == "" || pl.ColorKey == "" {
			continue
		}
		p.keys[pl.Label] = pl.ColorKey
		if pl.Color != "" {
			p.colors[pl.ColorKey] = pl.Color
		}
	}
	return p
}

// DefaultPalette covers the stock platform labels.
func DefaultPalette() *Palette {
	return NewPalette(
		Platform{Label: "Meta", ColorKey: "meta", Color: "#1877F2"},
		Platform{Label: "Google Ads", ColorKey: "google", Color: "#34A853"},
	)
}

func (p *Palette) ColorKey(platformLabel string) string {
	if k, ok := p.keys[platformLabel]; ok {
		return k
	}
	return NeutralKey
}

// Colors returns a copy of the color key to hex table.
func (p *Palette) Colors() map[string]string {
	out := make(map[string]string, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}

// Project returns one point per record, so points[i] always matches
// records[i]. A nil record plots as an unlabeled neutral 0; undefined values
// (nil roi, unknown metric) plot as 0.
func (p *Palette) Project(records []*models.Record, metric models.Metric) []models.Point {
	out := make([]models.Point, 0, len(records))
	for _, r := range records {
		if r == nil {
			out = append(out, models.Point{ColorKey: NeutralKey})
			continue
		}
		v, _ := r.Value(metric)
		out = append(out, models.Point{Label: r.Label(), Value: v, ColorKey: p.ColorKey(r.PlatformLabel)})
	}
	return out
}

// ProjectAll fans out one series per metric in canonical order.
func (p *Palette) ProjectAll(records []*models.Record) []models.Series {
	out := make([]models.Series, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		out = append(out, models.Series{Metric: m, Points: p.Project(records, m)})
	}
	return out
}

var std = DefaultPalette()

func Project(records []*models.Record, metric models.Metric) []models.Point {
	return std.Project(records, metric)
}
