// Package youtube holds the outbound collaborator clients: the search-page
// scraper, channel-page enrichment, and the video metadata source. All of
// them are best-effort boundary code; the analysis pipeline is written
// against their interfaces and survives their failures.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

const (
	searchBaseURL = "https://www.youtube.com/results"
	// sp=EgIQAQ%3D%3D restricts results to videos (no playlists/channels).
	videoFilterParam = "EgIQAQ=="

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// SearchOptions control one search call.
type SearchOptions struct {
	Limit int
	Type  string // "video" restricts to video results
}

// SearchClient scrapes YouTube's search results page. Results come from the
// ytInitialData JSON blob embedded in the HTML.
type SearchClient struct {
	http      *http.Client
	userAgent string
}

func NewSearchClient() *SearchClient {
	return &SearchClient{
		http:      &http.Client{Timeout: 15 * time.Second},
		userAgent: defaultUserAgent,
	}
}

// Search runs one query and returns up to opts.Limit candidate videos.
func (c *SearchClient) Search(ctx context.Context, query string, opts SearchOptions) ([]model.CandidateVideo, error) {
	params := url.Values{}
	params.Set("search_query", query)
	if opts.Type == "video" {
		params.Set("sp", videoFilterParam)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search %q: unexpected status %d", query, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	raw, err := extractInitialData(doc)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	videos := parseSearchResults(raw)
	if opts.Limit > 0 && len(videos) > opts.Limit {
		videos = videos[:opts.Limit]
	}
	return videos, nil
}

// extractInitialData locates the ytInitialData assignment inside the page's
// script tags and returns the JSON payload.
func extractInitialData(doc *goquery.Document) ([]byte, error) {
	const marker = "var ytInitialData ="

	var raw string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		txt := s.Text()
		if idx := strings.Index(txt, marker); idx >= 0 {
			raw = txt[idx+len(marker):]
			return false
		}
		return true
	})

	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, ";")
	if raw == "" || raw[0] != '{' {
		return nil, fmt.Errorf("ytInitialData not found")
	}
	return []byte(raw), nil
}

// Loose mirrors of the slices of ytInitialData we actually read. Anything
// unexpected simply unmarshals to zero values and is skipped.
type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []searchItem `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type searchItem struct {
	VideoRenderer *videoRenderer `json:"videoRenderer"`
}

type videoRenderer struct {
	VideoID           string     `json:"videoId"`
	Title             runsText   `json:"title"`
	ViewCountText     simpleText `json:"viewCountText"`
	PublishedTimeText simpleText `json:"publishedTimeText"`
	LengthText        simpleText `json:"lengthText"`
	Thumbnail         struct {
		Thumbnails []struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
	} `json:"thumbnail"`
	OwnerText struct {
		Runs []struct {
			Text               string `json:"text"`
			NavigationEndpoint struct {
				BrowseEndpoint struct {
					BrowseID string `json:"browseId"`
				} `json:"browseEndpoint"`
			} `json:"navigationEndpoint"`
		} `json:"runs"`
	} `json:"ownerText"`
	OwnerBadges []struct {
		MetadataBadgeRenderer struct {
			Style string `json:"style"`
		} `json:"metadataBadgeRenderer"`
	} `json:"ownerBadges"`
	DetailedMetadataSnippets []struct {
		SnippetText runsText `json:"snippetText"`
	} `json:"detailedMetadataSnippets"`
}

type simpleText struct {
	SimpleText string `json:"simpleText"`
}

type runsText struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (r runsText) text() string {
	var b strings.Builder
	for _, run := range r.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

func parseSearchResults(raw []byte) []model.CandidateVideo {
	var data initialData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}

	var videos []model.CandidateVideo
	sections := data.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents
	for _, section := range sections {
		for _, item := range section.ItemSectionRenderer.Contents {
			vr := item.VideoRenderer
			if vr == nil || vr.VideoID == "" {
				continue
			}

			v := model.CandidateVideo{
				ID:         vr.VideoID,
				Title:      vr.Title.text(),
				Views:      ParseViewCount(vr.ViewCountText.SimpleText),
				UploadedAt: vr.PublishedTimeText.SimpleText,
				Duration:   vr.LengthText.SimpleText,
			}
			if len(vr.DetailedMetadataSnippets) > 0 {
				v.Snippet = vr.DetailedMetadataSnippets[0].SnippetText.text()
			}
			if n := len(vr.Thumbnail.Thumbnails); n > 0 {
				v.Thumbnail = vr.Thumbnail.Thumbnails[n-1].URL
			}
			if len(vr.OwnerText.Runs) > 0 {
				v.ChannelName = vr.OwnerText.Runs[0].Text
				v.ChannelID = vr.OwnerText.Runs[0].NavigationEndpoint.BrowseEndpoint.BrowseID
			}
			for _, badge := range vr.OwnerBadges {
				if strings.Contains(badge.MetadataBadgeRenderer.Style, "VERIFIED") {
					v.ChannelVerified = true
					break
				}
			}
			videos = append(videos, v)
		}
	}
	return videos
}

// ParseViewCount converts YouTube count strings like "1,234,567 views" or
// "1.2M views" into an integer. Unparseable input yields 0.
func ParseViewCount(s string) int64 {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " views")
	s = strings.TrimSuffix(s, " view")
	s = strings.TrimSuffix(s, " subscribers")
	s = strings.TrimSuffix(s, " subscriber")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || s == "no" {
		return 0
	}

	multiplier := float64(1)
	switch s[len(s)-1] {
	case 'k':
		multiplier = 1e3
		s = s[:len(s)-1]
	case 'm':
		multiplier = 1e6
		s = s[:len(s)-1]
	case 'b':
		multiplier = 1e9
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0
	}
	return int64(math.Round(n * multiplier))
}
