package models

import (
	"errors"
	"fmt"
)

var ErrUnknownMetric = errors.New("unknown metric")

type Metric string

const (
	Spend          Metric = "spend"
	Impressions    Metric = "impressions"
	Clicks         Metric = "clicks"
	Leads          Metric = "leads"
	CTR            Metric = "ctr"
	ROI            Metric = "roi"
	CPL            Metric = "cpl"
	CVR            Metric = "cvr"
	CPC            Metric = "cpc"
	CPM            Metric = "cpm"
	EngagementRate Metric = "engagement_rate"
	CPE            Metric = "cpe"
	Engagements    Metric = "engagements"
	Interactions   Metric = "interactions"
	AllConversions Metric = "all_conversions"
)

// Metrics is the canonical metric order shared by comparison and charting.
var Metrics = []Metric{
	Spend, Impressions, Clicks, Leads, CTR, ROI,
	CPL, CVR, CPC, CPM, EngagementRate, CPE,
	Engagements, Interactions, AllConversions,
}

func (m Metric) Valid() bool {
	for _, k := range Metrics {
		if k == m {
			return true
		}
	}
	return false
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
	return m, nil
}

// Tier is a confidence label. A nil *Tier in Record.Confidence means the
// metric is undefined for that record.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func (t Tier) Ptr() *Tier { return &t }
