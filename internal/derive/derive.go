// Package derive holds the only definitions of the secondary ad metrics.
// Every formula returns 0 when its denominator is 0.
package derive

import "github.com/AngelCh415/adcompare/internal/models"

func CPL(spend, leads float64) float64 {
	if leads > 0 {
		return spend / leads
	}
	return 0
}

func CVR(leads float64, clicks int64) float64 {
	if clicks > 0 {
		return leads / float64(clicks) * 100
	}
	return 0
}

func CPC(spend float64, clicks int64) float64 {
	if clicks > 0 {
		return spend / float64(clicks)
	}
	return 0
}

func CPM(spend float64, impressions int64) float64 {
	if impressions > 0 {
		return spend / float64(impressions) * 1000
	}
	return 0
}

func EngagementRate(engagements float64, impressions int64) float64 {
	if impressions > 0 {
		return engagements / float64(impressions) * 100
	}
	return 0
}

func CPE(spend, engagements float64) float64 {
	if engagements > 0 {
		return spend / engagements
	}
	return 0
}

// CTR is used by extractors only when the source omits ctr entirely.
func CTR(clicks, impressions int64) float64 {
	if impressions > 0 {
		return float64(clicks) / float64(impressions) * 100
	}
	return 0
}

// Apply overwrites the derived fields of r from its base fields and stamps
// confidence: high for every defined value, nil where the value is nil.
func Apply(r *models.Record) {
	r.CPL = CPL(r.Spend, r.Leads)
	r.CVR = CVR(r.Leads, r.Clicks)
	r.CPC = CPC(r.Spend, r.Clicks)
	r.CPM = CPM(r.Spend, r.Impressions)
	r.EngagementRate = EngagementRate(r.Engagements, r.Impressions)
	r.CPE = CPE(r.Spend, r.Engagements)

	conf := make(map[models.Metric]*models.Tier, len(models.Metrics))
	for _, m := range models.Metrics {
		if _, ok := r.Value(m); ok {
			conf[m] = models.TierHigh.Ptr()
		} else {
			conf[m] = nil
		}
	}
	r.Confidence = conf
}
