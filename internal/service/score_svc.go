package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

// Scoring constants for the three metric dimensions. All scores clamp to
// [0, 100].
const (
	marketBaseScore       = 40
	competitionBaseScore  = 30
	monetizationBaseScore = 30

	emptyMarketScore      = 30
	emptyCompetitionScore = 50

	bigChannelSubscribers = 100_000

	minRPM = 0.5
	maxRPM = 6.0

	// Sample-based RPM adjustment: unusually strong samples boost the
	// estimate, weak ones cut it.
	rpmBoostFactor = 1.2
	rpmCutFactor   = 0.8
)

// Competition level descriptions, fixed per level.
const (
	descSaturated = "This niche is dominated by large established channels. Breaking in requires a strongly differentiated angle."
	descHighComp  = "Competition is strong but not closed off. Consistent quality and a clear sub-topic focus can still win an audience."
	descMedComp   = "A healthy mix of channel sizes competes here. Good production quality puts you in contention."
	descLowComp   = "Few established channels dominate this space. Early movers can build an audience quickly."
	descNeutral   = "Not enough competitor data to judge the field; assume moderate competition."
)

// ScoreService computes the three metric dimensions from a candidate video
// set. Pure derivations: same input, same output, nothing retained between
// calls.
type ScoreService struct{}

func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// MarketSize scores audience demand from average views and sample size.
func (s *ScoreService) MarketSize(videos []model.CandidateVideo) model.MarketSize {
	if len(videos) == 0 {
		return model.MarketSize{Score: emptyMarketScore, Level: model.LevelLow}
	}

	var totalViews int64
	for _, v := range videos {
		totalViews += v.Views
	}
	avgViews := totalViews / int64(len(videos))

	score := marketBaseScore
	switch {
	case avgViews > 1_000_000:
		score += 30
	case avgViews > 500_000:
		score += 25
	case avgViews > 100_000:
		score += 20
	case avgViews > 50_000:
		score += 15
	case avgViews > 10_000:
		score += 10
	case avgViews > 1_000:
		score += 5
	}

	switch {
	case len(videos) > 40:
		score += 15
	case len(videos) > 30:
		score += 10
	case len(videos) > 20:
		score += 5
	}

	score = clampScore(score)
	return model.MarketSize{
		Score:            score,
		Level:            marketLevel(score),
		TotalViews:       totalViews,
		VideoCount:       len(videos),
		AvgViewsPerVideo: avgViews,
	}
}

func marketLevel(score int) string {
	switch {
	case score >= 80:
		return model.LevelExcellent
	case score >= 65:
		return model.LevelHigh
	case score >= 45:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// Competition scores how entrenched existing channels are: mean subscriber
// counts plus the verified and big-channel fractions.
func (s *ScoreService) Competition(videos []model.CandidateVideo) model.Competition {
	if len(videos) == 0 {
		return model.Competition{
			Score:       emptyCompetitionScore,
			Level:       model.LevelMedium,
			Description: descNeutral,
		}
	}

	type channelAgg struct {
		subscribers int64
		verified    bool
	}
	channels := make(map[string]*channelAgg)
	for _, v := range videos {
		key := v.ChannelKey()
		agg, ok := channels[key]
		if !ok {
			agg = &channelAgg{}
			channels[key] = agg
		}
		if v.ChannelSubscribers > agg.subscribers {
			agg.subscribers = v.ChannelSubscribers
		}
		if v.ChannelVerified {
			agg.verified = true
		}
	}

	var subSum int64
	verified, big := 0, 0
	for _, agg := range channels {
		subSum += agg.subscribers
		if agg.verified {
			verified++
		}
		if agg.subscribers > bigChannelSubscribers {
			big++
		}
	}

	count := len(channels)
	avgSubs := subSum / int64(count)
	verifiedRatio := float64(verified) / float64(count)
	bigRatio := float64(big) / float64(count)

	score := competitionBaseScore
	switch {
	case avgSubs > 1_000_000:
		score += 30
	case avgSubs > 500_000:
		score += 25
	case avgSubs > 100_000:
		score += 20
	case avgSubs > 50_000:
		score += 15
	case avgSubs > 10_000:
		score += 10
	}
	score += int(math.Round(verifiedRatio*20 + bigRatio*15))

	score = clampScore(score)
	level, desc := competitionLevel(score)
	return model.Competition{
		Score:           score,
		Level:           level,
		Description:     desc,
		ChannelCount:    count,
		AvgSubscribers:  avgSubs,
		VerifiedRatio:   verifiedRatio,
		BigChannelRatio: bigRatio,
	}
}

func competitionLevel(score int) (string, string) {
	switch {
	case score >= 80:
		return model.LevelSaturated, descSaturated
	case score >= 60:
		return model.LevelHigh, descHighComp
	case score >= 40:
		return model.LevelMedium, descMedComp
	default:
		return model.LevelLow, descLowComp
	}
}

// Monetization resolves the niche RPM through the three-tier lookup,
// adjusts it by sample strength, and scores the revenue potential.
func (s *ScoreService) Monetization(h model.NicheHierarchy, videos []model.CandidateVideo) model.Monetization {
	avgViews, avgSubs := sampleAverages(videos)
	rpm := resolveRPM(h, avgViews, avgSubs)

	score := monetizationBaseScore
	switch {
	case rpm >= 4:
		score += 35
	case rpm >= 3:
		score += 25
	case rpm >= 2.5:
		score += 20
	case rpm >= 2:
		score += 15
	default:
		score += 10
	}

	switch {
	case avgViews > 500_000:
		score += 20
	case avgViews > 100_000:
		score += 15
	case avgViews > 50_000:
		score += 10
	case avgViews > 10_000:
		score += 5
	}

	score = clampScore(score)
	return model.Monetization{
		Score: score,
		Level: monetizationLevel(score),
		RPM:   rpm,
		EstimatedRevenue: model.EstimatedRevenue{
			Per1K:   formatMoney(rpm),
			Per10K:  formatMoney(rpm * 10),
			Per100K: formatMoney(rpm * 100),
			Per1M:   formatMoney(rpm * 1000),
		},
	}
}

func monetizationLevel(score int) string {
	switch {
	case score >= 80:
		return model.LevelExcellent
	case score >= 65:
		return model.LevelGood
	case score >= 45:
		return model.LevelFair
	default:
		return model.LevelPoor
	}
}

// resolveRPM is the three-tier lookup: exact sub-niche, exact main niche,
// then a keyword-band estimate; finally adjusted by sample strength and
// clamped to [minRPM, maxRPM].
func resolveRPM(h model.NicheHierarchy, avgViews, avgSubs int64) float64 {
	rpm, ok := subNicheRPM[h.SubNiche]
	if !ok {
		rpm, ok = mainNicheRPM[h.MainNiche]
	}
	if !ok {
		rpm = estimateRPM(h.SubNiche + " " + h.MainNiche)
	}

	switch {
	case avgViews > 500_000 && avgSubs > 1_000_000:
		rpm *= rpmBoostFactor
	case avgViews > 0 && avgViews < 10_000 && avgSubs < 50_000:
		rpm *= rpmCutFactor
	}

	rpm = math.Min(math.Max(rpm, minRPM), maxRPM)
	return math.Round(rpm*100) / 100
}

// estimateRPM bands an unknown niche by keyword-category membership.
func estimateRPM(niche string) float64 {
	for _, term := range highValueTerms {
		if strings.Contains(niche, term) {
			return 3.5
		}
	}
	for _, term := range midValueTerms {
		if strings.Contains(niche, term) {
			return 2.3
		}
	}
	for _, term := range lowValueTerms {
		if strings.Contains(niche, term) {
			return 1.8
		}
	}
	return 2.0
}

func sampleAverages(videos []model.CandidateVideo) (avgViews, avgSubs int64) {
	if len(videos) == 0 {
		return 0, 0
	}
	var viewSum, subSum int64
	for _, v := range videos {
		viewSum += v.Views
		subSum += v.ChannelSubscribers
	}
	return viewSum / int64(len(videos)), subSum / int64(len(videos))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
