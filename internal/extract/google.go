package extract

import (
	"github.com/AngelCh415/adcompare/internal/coerce"
	"github.com/AngelCh415/adcompare/internal/derive"
	"github.com/AngelCh415/adcompare/internal/models"
)

const GoogleLabel = "Google Ads"

const microsPerUnit = 1_000_000

// Google reads Google Ads rows ({campaign|customer, metrics}) in either the
// REST camelCase or the GAQL snake_case spelling. A search response's first
// row is used when the payload is wrapped in "results".
type Google struct{ label string }

func NewGoogle(label string) *Google { return &Google{label: coalesce(label, GoogleLabel)} }

func (g *Google) Platform() string { return "google" }
func (g *Google) Label() string    { return g.label }

func (g *Google) Extract(raw any, hints models.Hints) *models.Record {
	obj, ok := object(raw)
	if !ok {
		return nil
	}
	row := any(obj)
	if _, ok := obj["metrics"]; !ok {
		if first := coerce.Dig(obj, "results", 0); first != nil {
			row = first
		}
	}
	met := coerce.Dig(row, "metrics")
	if _, isObj := met.(map[string]any); !isObj {
		met = row
	}

	r := &models.Record{PlatformLabel: g.label}
	identity(r, hints,
		firstString(row, []any{"campaign", "id"}, []any{"customer", "id"}, []any{"id"}),
		firstString(row, []any{"campaign", "name"}, []any{"customer", "descriptiveName"}, []any{"customer", "descriptive_name"}, []any{"name"}),
		"", "",
	)

	// cost in micros wins over the currency field
	if v, ok := pick(met, "cost_micros", "costMicros"); ok {
		r.Spend = maxf(coerce.ToNumber(v, 0) / microsPerUnit)
	} else {
		r.Spend = maxf(coerce.ToNumber(coerce.Dig(met, "cost"), 0))
	}
	r.Impressions = max0(coerce.ToInt(coerce.Dig(met, "impressions"), 0))
	r.Clicks = max0(coerce.ToInt(coerce.Dig(met, "clicks"), 0))
	// ctr arrives as a fraction
	if v, ok := pick(met, "ctr"); ok {
		r.CTR = maxf(coerce.ToNumber(v, 0) * 100)
	} else {
		r.CTR = derive.CTR(r.Clicks, r.Impressions)
	}

	r.Leads = maxf(coerce.ToNumber(coerce.Dig(met, "conversions"), 0))
	r.Engagements = maxf(coerce.ToNumber(coerce.Dig(met, "engagements"), 0))
	r.Interactions = maxf(coerce.ToNumber(coerce.Dig(met, "interactions"), 0))
	v, _ := pick(met, "all_conversions", "allConversions")
	r.AllConversions = maxf(coerce.ToNumber(v, 0))

	if v, ok := pick(met, "conversions_value", "conversionsValue"); ok && r.Spend > 0 {
		if value := coerce.ToNumber(v, 0); value > 0 {
			roi := (value - r.Spend) / r.Spend * 100
			r.ROI = &roi
		}
	}

	derive.Apply(r)
	return r
}
