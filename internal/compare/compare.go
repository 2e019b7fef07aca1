// Package compare computes metric-by-metric differences between records.
// It never mutates its inputs and never fails: missing records produce an
// empty result.
package compare

import (
	"math"

	"github.com/AngelCh415/adcompare/internal/models"
)

// Pair compares primary against secondary over models.Metrics. A metric
// undefined on both sides is skipped; an undefined side counts as 0.
// Better names the side with the larger magnitude, ties go to secondary.
func Pair(primary, secondary *models.Record) models.Comparison {
	res := models.Comparison{
		Primary:     primary,
		Secondary:   secondary,
		Differences: map[models.Metric]models.Difference{},
	}
	if primary == nil || secondary == nil {
		return res
	}
	for _, m := range models.Metrics {
		v1, ok1 := primary.Value(m)
		v2, ok2 := secondary.Value(m)
		if !ok1 && !ok2 {
			continue
		}
		res.Differences[m] = Diff(v1, v2)
	}
	return res
}

// Diff is the difference of a single metric value pair.
func Diff(v1, v2 float64) models.Difference {
	d := models.Difference{Absolute: v1 - v2, Better: models.SideSecondary}
	if v2 != 0 {
		d.Percentage = (v1 - v2) / v2 * 100
	}
	if math.Abs(v1) > math.Abs(v2) {
		d.Better = models.SidePrimary
	}
	return d
}

// Many exposes the entity list for N-way views and adds a pairwise
// comparison only when exactly two records are given.
func Many(records []*models.Record) models.MultiComparison {
	out := models.MultiComparison{Entities: make([]*models.Record, 0, len(records))}
	out.Entities = append(out.Entities, records...)
	if len(records) == 2 {
		p := Pair(records[0], records[1])
		out.Pair = &p
	}
	return out
}

// Ordered returns the differences of c in canonical metric order, each with
// its polarity verdict.
func Ordered(c models.Comparison) []Entry {
	out := make([]Entry, 0, len(c.Differences))
	for _, m := range models.Metrics {
		if d, ok := c.Differences[m]; ok {
			out = append(out, Entry{Metric: m, Difference: d, Verdict: Judge(m, d)})
		}
	}
	return out
}

type Entry struct {
	Metric models.Metric `json:"metric"`
	models.Difference
	// Verdict is the preferable side under the metric's polarity, "" when neutral.
	Verdict models.Side `json:"verdict"`
}
