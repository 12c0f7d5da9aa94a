package service

import (
	"fmt"
	"strings"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

// minRecentForActiveAudience: when at least this many top videos are under a
// month old, the niche gets an "active audience" insight.
const minRecentForActiveAudience = 5

// InsightService turns the scored metric blocks into human-readable insight
// and recommendation strings. Pure template selection; the output order
// (market, competition, monetization, top video, recency) is stable so runs
// are reproducible.
type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

// Generate builds the insights and recommendations for a scored analysis.
func (s *InsightService) Generate(result *model.AnalysisResult) ([]string, []string) {
	var insights, recommendations []string

	switch result.MarketSize.Level {
	case model.LevelExcellent:
		insights = append(insights, fmt.Sprintf("Strong audience demand: videos in %s average %s views.",
			result.NicheHierarchy.DisplayName, formatCount(result.MarketSize.AvgViewsPerVideo)))
		recommendations = append(recommendations, "The audience is already here. Focus on production quality to capture your share.")
	case model.LevelHigh:
		insights = append(insights, fmt.Sprintf("Healthy market: %s views per video on average across %d competitors.",
			formatCount(result.MarketSize.AvgViewsPerVideo), result.MarketSize.VideoCount))
		recommendations = append(recommendations, "Publish consistently; this market rewards regular uploads.")
	case model.LevelMedium:
		insights = append(insights, "Moderate audience size. Growth is possible but expect a slower ramp.")
		recommendations = append(recommendations, "Target long-tail topics within the niche to find underserved viewers.")
	default:
		insights = append(insights, "Limited audience demand detected in the sampled competitor videos.")
		recommendations = append(recommendations, "Consider a broader or adjacent niche with more search volume.")
	}

	switch result.Competition.Level {
	case model.LevelSaturated:
		insights = append(insights, fmt.Sprintf("Saturated field: average channel here has %s subscribers.",
			formatCount(result.Competition.AvgSubscribers)))
		recommendations = append(recommendations,
			"Differentiate hard: pick an angle the big channels ignore.",
			"Lean on a personal story or unique expertise that cannot be copied.")
	case model.LevelHigh:
		insights = append(insights, "Strong competition from established channels.")
		recommendations = append(recommendations, "Study the top performers and out-do them on depth or presentation.")
	case model.LevelMedium:
		insights = append(insights, "Balanced competition: room exists for well-executed newcomers.")
	default:
		insights = append(insights, "Low competition: few established channels dominate this space.")
		recommendations = append(recommendations, "Move fast to claim the topic before the field fills in.")
	}

	switch result.Monetization.Level {
	case model.LevelExcellent:
		insights = append(insights, fmt.Sprintf("Excellent monetization: estimated RPM of %s per 1K views.",
			result.Monetization.EstimatedRevenue.Per1K))
	case model.LevelGood:
		insights = append(insights, fmt.Sprintf("Good revenue potential at roughly %s per 1K views.",
			result.Monetization.EstimatedRevenue.Per1K))
	case model.LevelFair:
		insights = append(insights, "Fair ad rates; plan supplementary revenue like sponsorships or affiliates.")
	default:
		insights = append(insights, "Low ad rates in this niche; monetization will depend on volume or products.")
		recommendations = append(recommendations, "Build an email list or product funnel early; ads alone will not carry this niche.")
	}

	if len(result.TopVideos) > 0 {
		top := result.TopVideos[0]
		insights = append(insights, fmt.Sprintf("Top competitor video %q has %s views.",
			top.Title, formatCount(top.Views)))
	}

	if recentUploadCount(result.TopVideos) >= minRecentForActiveAudience {
		insights = append(insights, "Active audience: most top videos were uploaded within the last month.")
	}

	return insights, recommendations
}

// recentUploadCount counts top videos uploaded within roughly the last month.
func recentUploadCount(videos []model.CandidateVideo) int {
	count := 0
	for _, v := range videos {
		m := relAgeRe.FindStringSubmatch(strings.ToLower(v.UploadedAt))
		if m == nil {
			continue
		}
		switch m[2] {
		case "second", "minute", "hour", "day", "week":
			count++
		case "month":
			if m[1] == "1" {
				count++
			}
		}
	}
	return count
}

// formatCount renders large numbers compactly: 1200 -> "1.2K".
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return trimZero(fmt.Sprintf("%.1fB", float64(n)/1e9))
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1e6))
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1fK", float64(n)/1e3))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	if len(s) > 3 && s[len(s)-3:len(s)-1] == ".0" {
		return s[:len(s)-3] + s[len(s)-1:]
	}
	return s
}
