package model

import "time"

// Metric level labels. Market size and monetization share the score→level
// thresholds (≥80 / ≥65 / ≥45); competition uses ≥80 / ≥60 / ≥40.
const (
	LevelExcellent = "Excellent"
	LevelHigh      = "High"
	LevelMedium    = "Medium"
	LevelLow       = "Low"

	LevelSaturated = "Saturated"

	LevelGood = "Good"
	LevelFair = "Fair"
	LevelPoor = "Poor"
)

// MarketSize measures audience demand from the competitor sample.
type MarketSize struct {
	Score            int    `json:"score"`
	Level            string `json:"level"`
	TotalViews       int64  `json:"totalViews"`
	VideoCount       int    `json:"videoCount"`
	AvgViewsPerVideo int64  `json:"avgViewsPerVideo"`
}

// Competition measures how entrenched the existing channels are.
type Competition struct {
	Score           int     `json:"score"`
	Level           string  `json:"level"`
	Description     string  `json:"description"`
	ChannelCount    int     `json:"channelCount"`
	AvgSubscribers  int64   `json:"avgSubscribers"`
	VerifiedRatio   float64 `json:"verifiedRatio"`
	BigChannelRatio float64 `json:"bigChannelRatio"`
}

// Monetization estimates advertising revenue potential via RPM.
type Monetization struct {
	Score            int              `json:"score"`
	Level            string           `json:"level"`
	RPM              float64          `json:"rpm"`
	EstimatedRevenue EstimatedRevenue `json:"estimatedRevenue"`
}

// EstimatedRevenue holds formatted revenue-range display values
// at RPM × {1, 10, 100, 1000} thousand views.
type EstimatedRevenue struct {
	Per1K   string `json:"per1kViews"`
	Per10K  string `json:"per10kViews"`
	Per100K string `json:"per100kViews"`
	Per1M   string `json:"per1mViews"`
}

// AnalysisResult aggregates everything one analysis run produced.
type AnalysisResult struct {
	Niche           string           `json:"niche"`
	NicheHierarchy  NicheHierarchy   `json:"nicheHierarchy"`
	TotalChannels   int              `json:"totalChannels"`
	TotalVideos     int              `json:"totalVideos"`
	AverageViews    int64            `json:"averageViews"`
	TopVideos       []CandidateVideo `json:"topVideos"`
	MarketSize      MarketSize       `json:"marketSize"`
	Competition     Competition      `json:"competition"`
	Monetization    Monetization     `json:"monetization"`
	Insights        []string         `json:"insights"`
	Recommendations []string         `json:"recommendations"`
}

// AnalysisResponse is the API envelope for POST /api/niche-analyzer.
type AnalysisResponse struct {
	AnalysisResult
	Timestamp  time.Time `json:"timestamp"`
	DataSource string    `json:"dataSource"`
	Cached     bool      `json:"cached,omitempty"`
}

// AnalyzeRequest is the inbound body for POST /api/niche-analyzer.
type AnalyzeRequest struct {
	Input string `json:"input"`
}
