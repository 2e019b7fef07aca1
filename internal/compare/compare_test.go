package compare

import (
	"testing"

	"github.com/AngelCh415/adcompare/internal/derive"
	"github.com/AngelCh415/adcompare/internal/models"
)

func rec(id string, spend float64, clicks int64, roi *float64) *models.Record {
	r := &models.Record{EntityID: id, Spend: spend, Clicks: clicks, ROI: roi}
	derive.Apply(r)
	return r
}

func f(v float64) *float64 { return &v }

func TestPairOneNullROI(t *testing.T) {
	c := Pair(rec("a", 10, 1, f(150)), rec("b", 10, 1, nil))
	d, ok := c.Differences[models.ROI]
	if !ok {
		t.Fatal("roi must be present when one side is defined")
	}
	if d.Absolute != 150 || d.Percentage != 0 || d.Better != models.SidePrimary {
		t.Fatalf("unexpected roi diff %+v", d)
	}
}

func TestPairSkipsBothNull(t *testing.T) {
	c := Pair(rec("a", 10, 1, nil), rec("b", 20, 1, nil))
	if _, ok := c.Differences[models.ROI]; ok {
		t.Fatal("roi must be skipped when undefined on both sides")
	}
	if len(c.Differences) != len(models.Metrics)-1 {
		t.Fatalf("expected %d metrics, got %d", len(models.Metrics)-1, len(c.Differences))
	}
}

func TestPairValues(t *testing.T) {
	c := Pair(rec("a", 150, 10, nil), rec("b", 100, 10, nil))
	d := c.Differences[models.Spend]
	if d.Absolute != 50 || d.Percentage != 50 || d.Better != models.SidePrimary {
		t.Fatalf("unexpected spend diff %+v", d)
	}
	tie := c.Differences[models.Clicks]
	if tie.Better != models.SideSecondary || tie.Absolute != 0 {
		t.Fatalf("ties must go to secondary, got %+v", tie)
	}
}

func TestPairAntisymmetric(t *testing.T) {
	a, b := rec("a", 123.25, 7, f(-40)), rec("b", 80.5, 3, f(12))
	ab, ba := Pair(a, b), Pair(b, a)
	for _, m := range models.Metrics {
		if ab.Differences[m].Absolute != -ba.Differences[m].Absolute {
			t.Fatalf("%s absolute not antisymmetric", m)
		}
	}
}

func TestPairMagnitudeNotSign(t *testing.T) {
	d := Diff(-300, 100)
	if d.Better != models.SidePrimary {
		t.Fatalf("expected larger magnitude to win, got %s", d.Better)
	}
}

func TestPairDoesNotMutate(t *testing.T) {
	a, b := rec("a", 10, 2, nil), rec("b", 5, 1, f(3))
	beforeA, beforeB := *a, *b
	Pair(a, b)
	if a.Spend != beforeA.Spend || b.ROI != beforeB.ROI || *b.ROI != 3 {
		t.Fatal("inputs were mutated")
	}
}

func TestPairNilInput(t *testing.T) {
	c := Pair(nil, rec("b", 1, 1, nil))
	if c.Primary != nil || c.Secondary == nil || len(c.Differences) != 0 {
		t.Fatalf("unexpected result for nil primary: %+v", c)
	}
}

func TestMany(t *testing.T) {
	two := Many([]*models.Record{rec("a", 1, 1, nil), rec("b", 2, 1, nil)})
	if two.Pair == nil || len(two.Entities) != 2 {
		t.Fatal("expected pairwise comparison for two entities")
	}
	three := Many([]*models.Record{rec("a", 1, 1, nil), rec("b", 2, 1, nil), rec("c", 3, 1, nil)})
	if three.Pair != nil || len(three.Entities) != 3 {
		t.Fatal("expected raw list only for three entities")
	}
	if empty := Many(nil); empty.Pair != nil || len(empty.Entities) != 0 {
		t.Fatal("expected empty result")
	}
}

func TestOrdered(t *testing.T) {
	entries := Ordered(Pair(rec("a", 1, 1, f(1)), rec("b", 2, 1, nil)))
	if len(entries) != len(models.Metrics) {
		t.Fatalf("expected all metrics, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Metric != models.Metrics[i] {
			t.Fatalf("position %d: got %s want %s", i, e.Metric, models.Metrics[i])
		}
		if e.Verdict != Judge(e.Metric, e.Difference) {
			t.Fatalf("%s: verdict %q does not match polarity", e.Metric, e.Verdict)
		}
	}
	if entries[0].Verdict != "" {
		t.Fatalf("spend is neutral, got %q", entries[0].Verdict)
	}
}

func TestJudge(t *testing.T) {
	lower := Diff(5, 10)
	if got := Judge(models.CPL, lower); got != models.SidePrimary {
		t.Fatalf("lower cpl should favour primary, got %q", got)
	}
	if got := Judge(models.Leads, lower); got != models.SideSecondary {
		t.Fatalf("fewer leads should favour secondary, got %q", got)
	}
	if got := Judge(models.Spend, lower); got != "" {
		t.Fatalf("spend is neutral, got %q", got)
	}
	if got := Judge(models.CPL, Diff(3, 3)); got != "" {
		t.Fatalf("equal values have no winner, got %q", got)
	}
}
