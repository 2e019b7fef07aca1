package extract

import (
	"strings"

	"github.com/AngelCh415/adcompare/internal/coerce"
	"github.com/AngelCh415/adcompare/internal/derive"
	"github.com/AngelCh415/adcompare/internal/models"
)

const MetaLabel = "Meta"

// Lead/conversion action types, matched exactly.
var metaConversionTypes = map[string]struct{}{
	"lead":                                 {},
	"purchase":                             {},
	"complete_registration":                {},
	"onsite_web_lead":                      {},
	"onsite_conversion.lead_grouped":       {},
	"offsite_conversion.fb_pixel_lead":     {},
	"offsite_conversion.fb_pixel_purchase": {},
}

// Engagement action types, matched exactly or as a substring of the action type.
var metaEngagementTypes = []string{"post_engagement", "page_engagement", "comment", "post_reaction"}

// Meta reads Graph API account or campaign payloads. Metrics live under
// "insights" (plain object or {"data": [...]}) or at the top level.
type Meta struct{ label string }

func NewMeta(label string) *Meta { return &Meta{label: coalesce(label, MetaLabel)} }

func (m *Meta) Platform() string { return "meta" }
func (m *Meta) Label() string    { return m.label }

func (m *Meta) Extract(raw any, hints models.Hints) *models.Record {
	obj, ok := object(raw)
	if !ok {
		return nil
	}
	ins := metaInsights(obj)

	r := &models.Record{PlatformLabel: m.label}
	identity(r, hints,
		firstString(obj, []any{"id"}, []any{"account_id"}, []any{"campaign_id"}, []any{"insights", "account_id"}, []any{"insights", "campaign_id"}),
		firstString(obj, []any{"name"}, []any{"account_name"}, []any{"campaign_name"}),
		coerce.ToSafeString(coerce.Dig(ins, "date_start"), ""),
		coerce.ToSafeString(coerce.Dig(ins, "date_stop"), ""),
	)

	r.Spend = maxf(coerce.ToNumber(coerce.Dig(ins, "spend"), 0))
	r.Impressions = max0(coerce.ToInt(coerce.Dig(ins, "impressions"), 0))
	r.Clicks = max0(coerce.ToInt(coerce.Dig(ins, "clicks"), 0))
	if v, ok := pick(ins, "ctr"); ok {
		r.CTR = maxf(coerce.ToNumber(v, 0))
	} else {
		r.CTR = derive.CTR(r.Clicks, r.Impressions)
	}

	actions := coerce.Dig(ins, "actions")
	r.AllConversions = sumActions(actions, isMetaConversion)
	r.Engagements = sumActions(actions, isMetaEngagement)
	r.Interactions = sumActions(actions, nil)

	// The results block carries the objective's single conversion count.
	if v := metaResult(ins, obj); v != nil {
		r.Leads = maxf(coerce.ToNumber(v, 0))
	} else {
		r.Leads = r.AllConversions
	}

	if v, ok := pick(ins, "roi"); ok {
		roi := coerce.ToNumber(v, 0)
		r.ROI = &roi
	} else if v, ok := pick(obj, "roi"); ok {
		roi := coerce.ToNumber(v, 0)
		r.ROI = &roi
	}

	derive.Apply(r)
	return r
}

func metaInsights(obj map[string]any) any {
	ins, ok := obj["insights"]
	if !ok {
		return obj
	}
	if row := coerce.Dig(ins, "data", 0); row != nil {
		return row
	}
	if _, isObj := ins.(map[string]any); isObj {
		return ins
	}
	return map[string]any{}
}

func metaResult(ins, obj any) any {
	if v := coerce.Dig(ins, "results", 0, "values", 0, "value"); v != nil {
		return v
	}
	return coerce.Dig(obj, "results", 0, "values", 0, "value")
}

func isMetaConversion(t string) bool {
	_, ok := metaConversionTypes[t]
	return ok
}

func isMetaEngagement(t string) bool {
	if t == "" {
		return false
	}
	for _, e := range metaEngagementTypes {
		if strings.Contains(t, e) {
			return true
		}
	}
	return false
}
