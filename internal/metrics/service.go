package metrics

import (
	"fmt"
	"log/slog"

	"github.com/AngelCh415/adcompare/internal/chart"
	"github.com/AngelCh415/adcompare/internal/compare"
	"github.com/AngelCh415/adcompare/internal/derive"
	"github.com/AngelCh415/adcompare/internal/extract"
	"github.com/AngelCh415/adcompare/internal/models"
)

// Recorder receives usage counts; utils.Instruments implements it.
type Recorder interface {
	Extraction(platform string, absent bool)
	Comparison(entities int)
}

type nopRecorder struct{}

func (nopRecorder) Extraction(string, bool) {}
func (nopRecorder) Comparison(int)          {}

type Service struct {
	reg     *extract.Registry
	palette *chart.Palette
	rec     Recorder
	log     *slog.Logger
}

func NewService(reg *extract.Registry, palette *chart.Palette, rec Recorder, log *slog.Logger) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{reg: reg, palette: palette, rec: rec, log: log}
}

// Entity is one raw payload to normalize, tagged with its platform.
type Entity struct {
	Platform string       `json:"platform"`
	Payload  any          `json:"payload"`
	Hints    models.Hints `json:"hints"`
}

type CompareResult struct {
	models.MultiComparison
	// Ordered lists the pair's differences in canonical metric order; nil
	// unless a pair was compared.
	Ordered []compare.Entry `json:"ordered"`
	// Series points line up with Entities by index.
	Series []models.Series `json:"series"`
}

type CatalogEntry struct {
	Metric   models.Metric    `json:"metric"`
	Polarity compare.Polarity `json:"polarity"`
}

// Extract returns a nil record, not an error, for an absent payload.
func (s *Service) Extract(platform string, raw any, hints models.Hints) (*models.Record, error) {
	ex, err := s.reg.Get(platform)
	if err != nil {
		return nil, err
	}
	r := ex.Extract(raw, hints)
	s.rec.Extraction(ex.Platform(), r == nil)
	if r == nil {
		s.log.Debug("absent payload", slog.String("platform", ex.Platform()), slog.String("entity_id", hints.EntityID))
	}
	return r, nil
}

// Compare normalizes every entity (absent payloads stay nil in place) and
// compares them. metric limits the chart series to one metric; empty means all.
func (s *Service) Compare(entities []Entity, metric string) (CompareResult, error) {
	var only models.Metric
	if metric != "" {
		m, err := models.ParseMetric(metric)
		if err != nil {
			return CompareResult{}, err
		}
		only = m
	}
	recs := make([]*models.Record, 0, len(entities))
	absent := map[int]models.Point{}
	for i, e := range entities {
		r, err := s.Extract(e.Platform, e.Payload, e.Hints)
		if err != nil {
			return CompareResult{}, fmt.Errorf("entity %d: %w", i, err)
		}
		if r == nil {
			absent[i] = s.placeholder(e)
		}
		recs = append(recs, r)
	}

	out := CompareResult{MultiComparison: compare.Many(recs)}
	s.rec.Comparison(len(recs))
	if out.Pair != nil {
		out.Ordered = compare.Ordered(*out.Pair)
	}
	if only != "" {
		out.Series = []models.Series{{Metric: only, Points: s.palette.Project(recs, only)}}
	} else {
		out.Series = s.palette.ProjectAll(recs)
	}
	for _, sr := range out.Series {
		for i, p := range absent {
			sr.Points[i] = p
		}
	}
	return out, nil
}

// placeholder is the zero point plotted for an entity without data, labeled
// from its hints and colored by its platform.
func (s *Service) placeholder(e Entity) models.Point {
	p := models.Point{Label: e.Hints.EntityName, ColorKey: chart.NeutralKey}
	if p.Label == "" {
		p.Label = e.Hints.EntityID
	}
	if ex, err := s.reg.Get(e.Platform); err == nil {
		p.ColorKey = s.palette.ColorKey(ex.Label())
	}
	return p
}

// Project plots caller-supplied records. Derived metrics are recomputed from
// each record's base metrics on a copy, so posted derived values are ignored.
func (s *Service) Project(records []*models.Record, metric string) ([]models.Point, error) {
	m, err := models.ParseMetric(metric)
	if err != nil {
		return nil, err
	}
	fresh := make([]*models.Record, len(records))
	for i, r := range records {
		if r == nil {
			continue
		}
		cp := *r
		derive.Apply(&cp)
		fresh[i] = &cp
	}
	return s.palette.Project(fresh, m), nil
}

func (s *Service) Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		out = append(out, CatalogEntry{Metric: m, Polarity: compare.PolarityOf(m)})
	}
	return out
}

func (s *Service) Colors() map[string]string { return s.palette.Colors() }

func (s *Service) Platforms() []string { return s.reg.Platforms() }
