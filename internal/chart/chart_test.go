package chart

import (
	"testing"

	"github.com/AngelCh415/adcompare/internal/models"
)

func TestProjectEmpty(t *testing.T) {
	got := Project(nil, models.Spend)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if got := Project([]*models.Record{}, models.Spend); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestProjectColorsAndLabels(t *testing.T) {
	roi := 12.5
	recs := []*models.Record{
		{EntityID: "1", EntityName: "Brand FB", PlatformLabel: "Meta", Spend: 10, ROI: &roi},
		{EntityID: "2", PlatformLabel: "Google Ads", Spend: 20},
		nil,
		{EntityID: "3", PlatformLabel: "TikTok", Spend: 30},
	}
	pts := Project(recs, models.Spend)
	if len(pts) != len(recs) {
		t.Fatalf("expected one point per record, got %d", len(pts))
	}
	want := []models.Point{
		{Label: "Brand FB", Value: 10, ColorKey: "meta"},
		{Label: "2", Value: 20, ColorKey: "google"},
		{ColorKey: NeutralKey},
		{Label: "3", Value: 30, ColorKey: NeutralKey},
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("point %d: got %+v want %+v", i, pts[i], want[i])
		}
	}

	roiPts := Project(recs, models.ROI)
	if roiPts[0].Value != 12.5 || roiPts[1].Value != 0 {
		t.Fatalf("unexpected roi points %+v", roiPts)
	}
}

func TestProjectAllFanOut(t *testing.T) {
	recs := []*models.Record{{EntityID: "1", PlatformLabel: "Meta"}, {EntityID: "2", PlatformLabel: "Google Ads"}}
	series := DefaultPalette().ProjectAll(recs)
	if len(series) != len(models.Metrics) {
		t.Fatalf("expected one series per metric, got %d", len(series))
	}
	for i, s := range series {
		if s.Metric != models.Metrics[i] || len(s.Points) != 2 {
			t.Fatalf("series %d malformed: %+v", i, s)
		}
	}
}

func TestCustomPalette(t *testing.T) {
	p := NewPalette(Platform{Label: "Platform A", ColorKey: "a", Color: "#111111"}, Platform{Label: "", ColorKey: "x"})
	if p.ColorKey("Platform A") != "a" || p.ColorKey("Meta") != NeutralKey {
		t.Fatal("unexpected color keys")
	}
	if c := p.Colors(); c["a"] != "#111111" || c[NeutralKey] == "" {
		t.Fatalf("unexpected colors %v", c)
	}
}
