package compare

import "github.com/AngelCh415/adcompare/internal/models"

// Polarity tells presentation code which direction is good for a metric.
// Difference.Better is magnitude only and does not use this table.
type Polarity string

const (
	HigherIsBetter Polarity = "higher"
	LowerIsBetter  Polarity = "lower"
	Neutral        Polarity = "neutral"
)

var polarities = map[models.Metric]Polarity{
	models.Spend:          Neutral,
	models.Impressions:    HigherIsBetter,
	models.Clicks:         HigherIsBetter,
	models.Leads:          HigherIsBetter,
	models.CTR:            HigherIsBetter,
	models.ROI:            HigherIsBetter,
	models.CPL:            LowerIsBetter,
	models.CVR:            HigherIsBetter,
	models.CPC:            LowerIsBetter,
	models.CPM:            LowerIsBetter,
	models.EngagementRate: HigherIsBetter,
	models.CPE:            LowerIsBetter,
	models.Engagements:    HigherIsBetter,
	models.Interactions:   HigherIsBetter,
	models.AllConversions: HigherIsBetter,
}

func PolarityOf(m models.Metric) Polarity {
	if p, ok := polarities[m]; ok {
		return p
	}
	return Neutral
}

// Judge returns the side whose value is preferable under m's polarity, or
// "" when the metric is neutral or both sides are equal.
func Judge(m models.Metric, d models.Difference) models.Side {
	if d.Absolute == 0 {
		return ""
	}
	switch PolarityOf(m) {
	case HigherIsBetter:
		if d.Absolute > 0 {
			return models.SidePrimary
		}
		return models.SideSecondary
	case LowerIsBetter:
		if d.Absolute < 0 {
			return models.SidePrimary
		}
		return models.SideSecondary
	}
	return ""
}
