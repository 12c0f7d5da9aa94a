package service

import (
	"strings"
	"testing"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Niche: "Investing (Finance)",
		NicheHierarchy: model.NicheHierarchy{
			MainNiche:   "finance",
			SubNiche:    "investing",
			DisplayName: "Investing (Finance)",
		},
		MarketSize: model.MarketSize{
			Score: 85, Level: model.LevelExcellent,
			AvgViewsPerVideo: 750_000, VideoCount: 40,
		},
		Competition: model.Competition{
			Score: 85, Level: model.LevelSaturated,
			AvgSubscribers: 2_000_000,
		},
		Monetization: model.Monetization{
			Score: 80, Level: model.LevelExcellent,
			RPM:              4.9,
			EstimatedRevenue: model.EstimatedRevenue{Per1K: "$4.90"},
		},
		TopVideos: []model.CandidateVideo{
			{Title: "How I Invest", Views: 1_200_000, UploadedAt: "2 days ago"},
			{Title: "Index Funds Explained", Views: 900_000, UploadedAt: "1 week ago"},
			{Title: "Dividend Portfolio", Views: 800_000, UploadedAt: "3 days ago"},
			{Title: "ETF Basics", Views: 700_000, UploadedAt: "1 month ago"},
			{Title: "Stocks 101", Views: 600_000, UploadedAt: "5 hours ago"},
		},
	}
}

func TestGenerate_OrderIsStable(t *testing.T) {
	svc := NewInsightService()
	result := sampleResult()

	insights, recommendations := svc.Generate(result)

	if len(insights) != 5 {
		t.Fatalf("insight count = %d, want 5 (market, competition, monetization, top video, recency)", len(insights))
	}

	checks := []struct {
		idx      int
		contains string
	}{
		{0, "audience demand"},
		{1, "Saturated"},
		{2, "monetization"},
		{3, "Top competitor video"},
		{4, "Active audience"},
	}
	for _, c := range checks {
		if !strings.Contains(insights[c.idx], c.contains) {
			t.Errorf("insights[%d] = %q, want it to mention %q", c.idx, insights[c.idx], c.contains)
		}
	}

	if len(recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	svc := NewInsightService()

	first, _ := svc.Generate(sampleResult())
	again, _ := svc.Generate(sampleResult())

	if len(first) != len(again) {
		t.Fatalf("insight counts differ between runs: %d vs %d", len(first), len(again))
	}
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("insights[%d] differs between runs", i)
		}
	}
}

func TestGenerate_NoActiveAudienceForStaleUploads(t *testing.T) {
	svc := NewInsightService()
	result := sampleResult()
	for i := range result.TopVideos {
		result.TopVideos[i].UploadedAt = "8 months ago"
	}

	insights, _ := svc.Generate(result)
	for _, in := range insights {
		if strings.Contains(in, "Active audience") {
			t.Error("stale uploads should not produce the active-audience insight")
		}
	}
}

func TestRecentUploadCount(t *testing.T) {
	videos := []model.CandidateVideo{
		{UploadedAt: "3 hours ago"},
		{UploadedAt: "2 days ago"},
		{UploadedAt: "1 week ago"},
		{UploadedAt: "1 month ago"},
		{UploadedAt: "3 months ago"},
		{UploadedAt: "2 years ago"},
		{UploadedAt: "Streamed live"},
	}

	if got := recentUploadCount(videos); got != 4 {
		t.Errorf("recentUploadCount = %d, want 4", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{999, "999"},
		{1_200, "1.2K"},
		{1_000_000, "1M"},
		{2_500_000, "2.5M"},
		{1_300_000_000, "1.3B"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
