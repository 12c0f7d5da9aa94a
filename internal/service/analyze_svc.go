package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SanaUllah13/youtools-go/internal/middleware"
	"github.com/SanaUllah13/youtools-go/internal/model"
	"github.com/SanaUllah13/youtools-go/internal/repository"
	"github.com/SanaUllah13/youtools-go/internal/youtube"
	"github.com/SanaUllah13/youtools-go/pkg/normalize"
)

// ErrNoCompetitorData is the single hard failure of the pipeline: every
// downstream metric needs at least one data point, so an empty fetch result
// aborts the analysis.
var ErrNoCompetitorData = errors.New("no competitor videos found for this niche")

// topVideoCount caps how many ranked videos the response carries.
const topVideoCount = 10

// AnalysisCache is the response cache boundary (Redis in production).
type AnalysisCache interface {
	GetAnalysis(ctx context.Context, key string) ([]byte, error)
	SetAnalysis(ctx context.Context, key string, data interface{}) error
}

// MetadataSource resolves a video ID to its title/description. Best effort:
// failure only skips re-classification.
type MetadataSource interface {
	GetVideoMetadata(ctx context.Context, videoID string) (*youtube.VideoMetadata, error)
}

// CompetitorFetcher is the fetch stage boundary.
type CompetitorFetcher interface {
	Fetch(ctx context.Context, h model.NicheHierarchy, limit int) ([]model.CandidateVideo, error)
}

// AnalyzeService sequences the full pipeline: extract, classify,
// re-classify on source metadata, fetch competitors, score, summarize,
// cache. One request is one run; nothing is shared across requests except
// the cache.
type AnalyzeService struct {
	extractor  Extractor
	classifier *ClassifierService
	fetcher    CompetitorFetcher
	scorer     *ScoreService
	insights   *InsightService
	meta       MetadataSource // may be nil
	cache      AnalysisCache  // may be nil
	repo       *repository.AnalysisRepo
	maxVideos  int
}

func NewAnalyzeService(
	classifier *ClassifierService,
	fetcher CompetitorFetcher,
	scorer *ScoreService,
	insights *InsightService,
	meta MetadataSource,
	cache AnalysisCache,
	repo *repository.AnalysisRepo,
	maxVideos int,
) *AnalyzeService {
	return &AnalyzeService{
		extractor:  NewExtractor(),
		classifier: classifier,
		fetcher:    fetcher,
		scorer:     scorer,
		insights:   insights,
		meta:       meta,
		cache:      cache,
		repo:       repo,
		maxVideos:  maxVideos,
	}
}

// Analyze runs the pipeline for one input. Returns ErrNoCompetitorData when
// the fetch stage yields nothing; any other error is an unhandled failure
// for the handler to map to a generic 500.
func (s *AnalyzeService) Analyze(ctx context.Context, input string) (*model.AnalysisResponse, error) {
	key := normalize.CacheKey(input)

	if cached := s.cachedResponse(ctx, key); cached != nil {
		return cached, nil
	}

	ref := s.extractor.Extract(input)
	hierarchy := s.classifyRef(ctx, ref, input)

	// A resolved video reference gives us real title/description to
	// classify on; prefer that result unless it came back general.
	if ref.Kind == RefVideo && s.meta != nil {
		if md, err := s.meta.GetVideoMetadata(ctx, ref.Value); err != nil {
			middleware.Logger.Warn().Err(err).Str("video", ref.Value).
				Msg("source metadata unavailable, keeping raw-input classification")
		} else if richer := s.classifier.Classify(ctx, md.Title, md.Description); !richer.IsGeneral() {
			hierarchy = richer
		}
	}

	videos, err := s.fetcher.Fetch(ctx, hierarchy, s.maxVideos)
	if err != nil {
		return nil, fmt.Errorf("fetch competitors: %w", err)
	}
	if len(videos) == 0 {
		return nil, ErrNoCompetitorData
	}

	marketSize := s.scorer.MarketSize(videos)
	competition := s.scorer.Competition(videos)
	monetization := s.scorer.Monetization(hierarchy, videos)

	top := videos
	if len(top) > topVideoCount {
		top = top[:topVideoCount]
	}

	result := model.AnalysisResult{
		Niche:          hierarchy.DisplayName,
		NicheHierarchy: hierarchy,
		TotalChannels:  competition.ChannelCount,
		TotalVideos:    len(videos),
		AverageViews:   marketSize.AvgViewsPerVideo,
		TopVideos:      top,
		MarketSize:     marketSize,
		Competition:    competition,
		Monetization:   monetization,
	}
	result.Insights, result.Recommendations = s.insights.Generate(&result)

	resp := &model.AnalysisResponse{
		AnalysisResult: result,
		Timestamp:      time.Now().UTC(),
		DataSource:     "live-analysis",
	}

	if s.cache != nil {
		if err := s.cache.SetAnalysis(ctx, key, resp); err != nil {
			middleware.Logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	s.record(ctx, key, input, resp)

	return resp, nil
}

// cachedResponse returns a replayed response when the key is cached.
func (s *AnalyzeService) cachedResponse(ctx context.Context, key string) *model.AnalysisResponse {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.GetAnalysis(ctx, key)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil
	}
	if data == nil {
		return nil
	}
	var resp model.AnalysisResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		middleware.Logger.Warn().Err(err).Str("key", key).Msg("cached analysis unreadable, ignoring")
		return nil
	}
	resp.Cached = true
	return &resp
}

// classifyRef produces the initial hierarchy from the typed reference. Topic
// inputs that classify as general fall back to the topic-as-niche
// construction so the fetcher still searches for what the user typed.
func (s *AnalyzeService) classifyRef(ctx context.Context, ref Ref, input string) model.NicheHierarchy {
	switch ref.Kind {
	case RefTopic:
		h := s.classifier.Classify(ctx, ref.Value, "")
		if h.IsGeneral() {
			return model.HierarchyFromTopic(ref.Value)
		}
		return h
	case RefChannel:
		// Channel handles carry more signal than the full URL; an
		// unclassifiable handle still makes a searchable topic.
		h := s.classifier.Classify(ctx, ref.Value, "")
		if h.IsGeneral() {
			return model.HierarchyFromTopic(ref.Value)
		}
		return h
	default:
		return s.classifier.Classify(ctx, input, "")
	}
}

// record persists the analysis to history. Failure is logged, never fatal.
func (s *AnalyzeService) record(ctx context.Context, key, input string, resp *model.AnalysisResponse) {
	if !s.repo.Enabled() {
		return
	}
	err := s.repo.Insert(ctx, model.AnalysisRecord{
		InputKey:          key,
		RawInput:          input,
		MainNiche:         resp.NicheHierarchy.MainNiche,
		SubNiche:          resp.NicheHierarchy.SubNiche,
		DisplayName:       resp.NicheHierarchy.DisplayName,
		MarketScore:       resp.MarketSize.Score,
		CompetitionScore:  resp.Competition.Score,
		MonetizationScore: resp.Monetization.Score,
		VideoCount:        resp.TotalVideos,
		ChannelCount:      resp.TotalChannels,
	})
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("key", key).Msg("history insert failed")
	}
}
