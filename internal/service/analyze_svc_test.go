package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanaUllah13/youtools-go/internal/model"
	"github.com/SanaUllah13/youtools-go/internal/repository"
)

type fakeFetcher struct {
	videos []model.CandidateVideo
	err    error
	calls  int
}

func (f *fakeFetcher) Fetch(ctx context.Context, h model.NicheHierarchy, limit int) ([]model.CandidateVideo, error) {
	f.calls++
	return f.videos, f.err
}

// memCache is an in-memory stand-in for the Redis analysis cache.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) GetAnalysis(ctx context.Context, key string) ([]byte, error) {
	return m.entries[key], nil
}

func (m *memCache) SetAnalysis(ctx context.Context, key string, data interface{}) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func competitorSample() []model.CandidateVideo {
	return []model.CandidateVideo{
		{ID: "v1", Title: "investing basics", Views: 500_000, UploadedAt: "1 week ago", ChannelID: "c1", ChannelSubscribers: 900_000},
		{ID: "v2", Title: "index funds explained", Views: 300_000, UploadedAt: "2 weeks ago", ChannelID: "c2", ChannelSubscribers: 400_000},
		{ID: "v3", Title: "dividend portfolio", Views: 100_000, UploadedAt: "1 month ago", ChannelID: "c3", ChannelSubscribers: 150_000},
	}
}

func newTestAnalyzeService(fetcher CompetitorFetcher, cache AnalysisCache) *AnalyzeService {
	return NewAnalyzeService(
		NewClassifierService(nil),
		fetcher,
		NewScoreService(),
		NewInsightService(),
		nil,
		cache,
		repository.NewAnalysisRepo(nil),
		50,
	)
}

func TestAnalyze_EmptyFetchIsFatal(t *testing.T) {
	svc := newTestAnalyzeService(&fakeFetcher{}, nil)

	_, err := svc.Analyze(context.Background(), "investing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCompetitorData))
}

func TestAnalyze_FetchErrorPropagates(t *testing.T) {
	svc := newTestAnalyzeService(&fakeFetcher{err: errors.New("network down")}, nil)

	_, err := svc.Analyze(context.Background(), "investing")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoCompetitorData))
}

func TestAnalyze_FullPipeline(t *testing.T) {
	svc := newTestAnalyzeService(&fakeFetcher{videos: competitorSample()}, nil)

	resp, err := svc.Analyze(context.Background(), "bitcoin investing tips")
	require.NoError(t, err)

	assert.Equal(t, "live-analysis", resp.DataSource)
	assert.False(t, resp.Cached)
	assert.False(t, resp.Timestamp.IsZero())

	assert.Equal(t, "finance", resp.NicheHierarchy.MainNiche)
	assert.Equal(t, 3, resp.TotalVideos)
	assert.Equal(t, 3, resp.TotalChannels)
	assert.NotEmpty(t, resp.Insights)
	assert.NotEmpty(t, resp.Recommendations)

	for _, score := range []int{resp.MarketSize.Score, resp.Competition.Score, resp.Monetization.Score} {
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestAnalyze_TopVideosCapped(t *testing.T) {
	videos := make([]model.CandidateVideo, 25)
	for i := range videos {
		videos[i] = model.CandidateVideo{
			ID:        string(rune('a'+i/5)) + string(rune('a'+i%5)),
			Title:     "investing",
			Views:     int64(1000 * (25 - i)),
			ChannelID: "chan",
		}
	}
	svc := newTestAnalyzeService(&fakeFetcher{videos: videos}, nil)

	resp, err := svc.Analyze(context.Background(), "investing")
	require.NoError(t, err)

	assert.Equal(t, 25, resp.TotalVideos)
	assert.Len(t, resp.TopVideos, 10)
}

func TestAnalyze_CacheShortCircuits(t *testing.T) {
	fetcher := &fakeFetcher{videos: competitorSample()}
	cache := newMemCache()
	svc := newTestAnalyzeService(fetcher, cache)

	first, err := svc.Analyze(context.Background(), "bitcoin investing")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	require.Equal(t, 1, fetcher.calls)

	second, err := svc.Analyze(context.Background(), "bitcoin investing")
	require.NoError(t, err)
	assert.True(t, second.Cached, "replayed response must be flagged cached")
	assert.Equal(t, 1, fetcher.calls, "cached replay must not re-run the pipeline")
	assert.Equal(t, first.Niche, second.Niche)
}

func TestAnalyze_CacheKeyNormalization(t *testing.T) {
	fetcher := &fakeFetcher{videos: competitorSample()}
	cache := newMemCache()
	svc := newTestAnalyzeService(fetcher, cache)

	_, err := svc.Analyze(context.Background(), "Bitcoin Investing")
	require.NoError(t, err)

	// Different surface form, same normalized key: served from cache.
	second, err := svc.Analyze(context.Background(), "  bitcoin   investing  ")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, fetcher.calls)
}

func TestAnalyze_GeneralTopicFallsBackToTopicHierarchy(t *testing.T) {
	fetcher := &fakeFetcher{videos: competitorSample()}
	svc := newTestAnalyzeService(fetcher, nil)

	resp, err := svc.Analyze(context.Background(), "beekeeping")
	require.NoError(t, err)

	// Unclassifiable topics keep the typed words as the niche instead of
	// collapsing to "general".
	assert.Equal(t, "beekeeping", resp.NicheHierarchy.MainNiche)
	assert.Equal(t, []string{"beekeeping"}, resp.NicheHierarchy.SearchKeywords)
}

func TestAnalyze_PersonalFinanceClassifiesUnderFinance(t *testing.T) {
	fetcher := &fakeFetcher{videos: competitorSample()}
	svc := newTestAnalyzeService(fetcher, nil)

	resp, err := svc.Analyze(context.Background(), "personal finance")
	require.NoError(t, err)

	assert.Equal(t, "finance", resp.NicheHierarchy.MainNiche)
	assert.Equal(t, "personal finance", resp.NicheHierarchy.SubNiche)
	assert.Equal(t, 4.6, resp.Monetization.RPM)
}

func TestAnalyze_ChannelHandleBecomesTopic(t *testing.T) {
	fetcher := &fakeFetcher{videos: competitorSample()}
	svc := newTestAnalyzeService(fetcher, nil)

	resp, err := svc.Analyze(context.Background(), "https://www.youtube.com/@beekeepinglife")
	require.NoError(t, err)

	assert.Equal(t, "beekeepinglife", resp.NicheHierarchy.MainNiche)
}
