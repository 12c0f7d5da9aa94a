package model

import "time"

// NicheCount is one entry of the most-analyzed-niches leaderboard.
type NicheCount struct {
	Niche string `json:"niche"`
	Count int    `json:"count"`
}

// StatsResponse is the API response for GET /api/stats.
type StatsResponse struct {
	TotalAnalyses        int          `json:"totalAnalyses"`
	DistinctNiches       int          `json:"distinctNiches"`
	AnalysesLast24h      int          `json:"analysesLast24h"`
	AvgMarketScore       float64      `json:"avgMarketScore"`
	AvgCompetitionScore  float64      `json:"avgCompetitionScore"`
	AvgMonetizationScore float64      `json:"avgMonetizationScore"`
	TopNiches            []NicheCount `json:"topNiches"`
}

// AnalysisRecord is one persisted row of analysis history.
type AnalysisRecord struct {
	InputKey          string    `json:"inputKey"`
	RawInput          string    `json:"rawInput"`
	MainNiche         string    `json:"mainNiche"`
	SubNiche          string    `json:"subNiche"`
	DisplayName       string    `json:"displayName"`
	MarketScore       int       `json:"marketScore"`
	CompetitionScore  int       `json:"competitionScore"`
	MonetizationScore int       `json:"monetizationScore"`
	VideoCount        int       `json:"videoCount"`
	ChannelCount      int       `json:"channelCount"`
	CreatedAt         time.Time `json:"createdAt"`
}
