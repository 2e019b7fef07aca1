package models

// Hints carry the identity and date range the caller already knows about an entity.
// They are passed through as-is; IDs are never validated or normalized.
type Hints struct {
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Since      string `json:"since"`
	Until      string `json:"until"`
}

// Record is the normalized performance of one ad account or campaign.
type Record struct {
	EntityID      string `json:"entity_id"`
	EntityName    string `json:"entity_name"`
	PlatformLabel string `json:"platform_label"`
	Since         string `json:"since,omitempty"`
	Until         string `json:"until,omitempty"`

	// base
	Spend          float64 `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Leads          float64 `json:"leads"`
	CTR            float64 `json:"ctr"`
	Engagements    float64 `json:"engagements"`
	Interactions   float64 `json:"interactions"`
	AllConversions float64 `json:"all_conversions"`

	// nil means not computable, which is not the same as 0
	ROI *float64 `json:"roi"`

	// derived
	CPL            float64 `json:"cpl"`
	CVR            float64 `json:"cvr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	EngagementRate float64 `json:"engagement_rate"`
	CPE            float64 `json:"cpe"`

	Confidence map[Metric]*Tier `json:"confidence"`
}

// Value returns the record's value for m. ok is false when the value is
// undefined (nil ROI) or m is not a known metric.
func (r *Record) Value(m Metric) (v float64, ok bool) {
	switch m {
	case Spend:
		return r.Spend, true
	case Impressions:
		return float64(r.Impressions), true
	case Clicks:
		return float64(r.Clicks), true
	case Leads:
		return r.Leads, true
	case CTR:
		return r.CTR, true
	case ROI:
		if r.ROI == nil {
			return 0, false
		}
		return *r.ROI, true
	case CPL:
		return r.CPL, true
	case CVR:
		return r.CVR, true
	case CPC:
		return r.CPC, true
	case CPM:
		return r.CPM, true
	case EngagementRate:
		return r.EngagementRate, true
	case CPE:
		return r.CPE, true
	case Engagements:
		return r.Engagements, true
	case Interactions:
		return r.Interactions, true
	case AllConversions:
		return r.AllConversions, true
	}
	return 0, false
}

// Label is the display name used by charts: the entity name, else its id.
func (r *Record) Label() string {
	if r.EntityName != "" {
		return r.EntityName
	}
	return r.EntityID
}

type Side string

const (
	SidePrimary   Side = "primary"
	SideSecondary Side = "secondary"
)

type Difference struct {
	Absolute   float64 `json:"absolute"`
	Percentage float64 `json:"percentage"`
	Better     Side    `json:"better"`
}

// Comparison is the metric-by-metric difference between two records.
// Differences only holds metrics defined on at least one side.
type Comparison struct {
	Primary     *Record               `json:"primary"`
	Secondary   *Record               `json:"secondary"`
	Differences map[Metric]Difference `json:"differences"`
}

// MultiComparison backs the N-way view: the raw entity list, plus a pairwise
// comparison only when exactly two entities are present.
type MultiComparison struct {
	Entities []*Record   `json:"entities"`
	Pair     *Comparison `json:"comparison"`
}

type Point struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	ColorKey string  `json:"color_key"`
}

type Series struct {
	Metric Metric  `json:"metric"`
	Points []Point `json:"points"`
}
