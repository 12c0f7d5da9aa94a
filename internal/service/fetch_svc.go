package service

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/SanaUllah13/youtools-go/internal/middleware"
	"github.com/SanaUllah13/youtools-go/internal/model"
	"github.com/SanaUllah13/youtools-go/internal/youtube"
)

// SearchProvider is the external search collaborator. A single query may
// fail; the fetcher logs and continues.
type SearchProvider interface {
	Search(ctx context.Context, query string, opts youtube.SearchOptions) ([]model.CandidateVideo, error)
}

// ChannelEnricher fills in subscriber counts the search page does not carry.
type ChannelEnricher interface {
	SubscriberCount(ctx context.Context, channelID string) (int64, error)
}

const (
	// maxResultsPerQuery caps one search call regardless of how few
	// queries the hierarchy produced.
	maxResultsPerQuery = 25
	// perQueryOversample requests more results than strictly needed so
	// the filters have room to reject.
	perQueryOversample = 2.5
	// maxEnrichChannels bounds the extra channel-page fetches per analysis.
	maxEnrichChannels = 5
	// relevanceRatioFloor accepts content matching at least 30% of the
	// meaningful query terms.
	relevanceRatioFloor = 0.30
)

// FetcherService queries the search collaborator per derived query, filters
// by recency and relevance, deduplicates and ranks by view count. Outbound
// calls go through a shared rate limiter so per-provider request rates stay
// bounded no matter how many queries one analysis fans out into.
type FetcherService struct {
	search  SearchProvider
	enrich  ChannelEnricher // may be nil
	limiter *rate.Limiter
}

func NewFetcherService(search SearchProvider, enrich ChannelEnricher, interval time.Duration) *FetcherService {
	return &FetcherService{
		search:  search,
		enrich:  enrich,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Fetch returns up to limit competitor videos for the hierarchy. An empty
// result is not an error here; the orchestrator decides that it is fatal.
func (s *FetcherService) Fetch(ctx context.Context, h model.NicheHierarchy, limit int) ([]model.CandidateVideo, error) {
	queries := buildQueries(h)
	perQuery := int(math.Ceil(float64(limit) / float64(len(queries)) * perQueryOversample))
	if perQuery > maxResultsPerQuery {
		perQuery = maxResultsPerQuery
	}

	terms := relevanceTerms(h.SearchKeywords)

	var collected []model.CandidateVideo
	for _, query := range queries {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		searchQueriesTotal.Inc()
		results, err := s.search.Search(ctx, query, youtube.SearchOptions{Limit: perQuery, Type: "video"})
		if err != nil {
			searchFailuresTotal.Inc()
			middleware.Logger.Warn().Err(err).Str("query", query).Msg("search query failed, skipping")
			continue
		}

		for _, v := range results {
			if isStale(v.UploadedAt) {
				continue
			}
			if !isRelevant(v, terms, h.SearchKeywords) {
				continue
			}
			collected = append(collected, v)
		}
	}

	videos := dedupVideos(collected)

	// Re-check recency after dedup: first occurrence wins on ID, and the
	// surviving copy must still be inside the window.
	fresh := videos[:0]
	for _, v := range videos {
		if !isStale(v.UploadedAt) {
			fresh = append(fresh, v)
		}
	}
	videos = fresh

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Views > videos[j].Views
	})
	if len(videos) > limit {
		videos = videos[:limit]
	}

	s.enrichChannels(ctx, videos)
	return videos, nil
}

// buildQueries derives the search query list: hierarchy keywords first, the
// static per-niche table second, generic templates last. Multi-word queries
// are quoted for phrase search.
func buildQueries(h model.NicheHierarchy) []string {
	if len(h.SearchKeywords) > 0 {
		queries := make([]string, 0, len(h.SearchKeywords))
		for _, kw := range h.SearchKeywords {
			queries = append(queries, quotePhrase(kw))
		}
		return queries
	}
	if static, ok := nicheQueries[h.SubNiche]; ok {
		return static
	}
	if static, ok := nicheQueries[h.MainNiche]; ok {
		return static
	}
	niche := h.SubNiche
	if niche == "" {
		niche = h.MainNiche
	}
	return []string{
		niche + " tutorial",
		"how to " + niche,
		"best " + niche + " tips",
	}
}

func quotePhrase(q string) string {
	if strings.Contains(q, " ") {
		return `"` + q + `"`
	}
	return q
}

// relAgeRe parses relative upload timestamps like "3 months ago".
var relAgeRe = regexp.MustCompile(`(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago`)

// isStale reports whether an upload timestamp is older than the one-year
// recency window. Unparseable values are kept (fail-open).
func isStale(uploadedAt string) bool {
	m := relAgeRe.FindStringSubmatch(strings.ToLower(uploadedAt))
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	switch m[2] {
	case "year":
		return n >= 1
	case "month":
		return n > 12
	default:
		return false
	}
}

// relevanceTerms extracts the meaningful words from the search keywords:
// longer than 2 characters and not a stopword, deduplicated.
func relevanceTerms(keywords []string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, kw := range keywords {
		for _, word := range strings.Fields(strings.ToLower(kw)) {
			word = strings.Trim(word, `"`)
			if len(word) <= 2 {
				continue
			}
			if _, stop := stopwords[word]; stop {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			terms = append(terms, word)
		}
	}
	return terms
}

// isRelevant rejects off-topic search noise. Blacklisted content categories
// are dropped unless they also mention a search keyword; everything else
// must match enough meaningful terms (ratio ≥ 0.30 or at least 2 hits).
func isRelevant(v model.CandidateVideo, terms, keywords []string) bool {
	content := strings.ToLower(v.Title + " " + v.Snippet + " " + v.ChannelName)

	for _, offTopic := range offTopicTerms {
		if !strings.Contains(content, offTopic) {
			continue
		}
		rescued := false
		for _, kw := range keywords {
			if strings.Contains(content, strings.Trim(strings.ToLower(kw), `"`)) {
				rescued = true
				break
			}
		}
		if !rescued {
			return false
		}
		break
	}

	if len(terms) == 0 {
		return true
	}

	matches := 0
	for _, term := range terms {
		if strings.Contains(content, term) {
			matches++
		}
	}
	if matches >= 2 {
		return true
	}
	return float64(matches)/float64(len(terms)) >= relevanceRatioFloor
}

// dedupVideos keeps the first occurrence per video ID, preserving order.
// Idempotent: running it on its own output changes nothing.
func dedupVideos(videos []model.CandidateVideo) []model.CandidateVideo {
	seen := make(map[string]struct{}, len(videos))
	out := make([]model.CandidateVideo, 0, len(videos))
	for _, v := range videos {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}

// enrichChannels scrapes subscriber counts for up to maxEnrichChannels
// channels missing them. Best effort: failures leave the count at zero.
func (s *FetcherService) enrichChannels(ctx context.Context, videos []model.CandidateVideo) {
	if s.enrich == nil {
		return
	}

	counts := make(map[string]int64)
	fetched := 0
	for i := range videos {
		id := videos[i].ChannelID
		if id == "" || videos[i].ChannelSubscribers > 0 {
			continue
		}
		subs, ok := counts[id]
		if !ok {
			if fetched >= maxEnrichChannels {
				continue
			}
			if err := s.limiter.Wait(ctx); err != nil {
				return
			}
			var err error
			subs, err = s.enrich.SubscriberCount(ctx, id)
			fetched++
			if err != nil {
				middleware.Logger.Debug().Err(err).Str("channel", id).Msg("channel enrichment failed")
				subs = 0
			}
			counts[id] = subs
		}
		videos[i].ChannelSubscribers = subs
	}
}
