package youtube

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseViewCount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1,234,567 views", 1_234_567},
		{"1.2M views", 1_200_000},
		{"850K views", 850_000},
		{"1.5B views", 1_500_000_000},
		{"1 view", 1},
		{"No views", 0},
		{"", 0},
		{"garbage", 0},
		{"2.4M subscribers", 2_400_000},
	}

	for _, tt := range tests {
		if got := ParseViewCount(tt.input); got != tt.want {
			t.Errorf("ParseViewCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

const samplePage = `<html><head>
<script>var something = 1;</script>
<script>var ytInitialData = {"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[{"videoRenderer":{"videoId":"dQw4w9WgXcQ","title":{"runs":[{"text":"Investing "},{"text":"Basics"}]},"viewCountText":{"simpleText":"1.2M views"},"publishedTimeText":{"simpleText":"3 weeks ago"},"lengthText":{"simpleText":"12:34"},"thumbnail":{"thumbnails":[{"url":"small.jpg"},{"url":"large.jpg"}]},"ownerText":{"runs":[{"text":"Finance Channel","navigationEndpoint":{"browseEndpoint":{"browseId":"UCabc123"}}}]},"ownerBadges":[{"metadataBadgeRenderer":{"style":"BADGE_STYLE_TYPE_VERIFIED"}}],"detailedMetadataSnippets":[{"snippetText":{"runs":[{"text":"Learn how to invest."}]}}]}},{"shelfRenderer":{}}]}}]}}}}};</script>
</head><body></body></html>`

func TestExtractAndParseSearchResults(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	raw, err := extractInitialData(doc)
	if err != nil {
		t.Fatalf("extractInitialData: %v", err)
	}

	videos := parseSearchResults(raw)
	if len(videos) != 1 {
		t.Fatalf("video count = %d, want 1 (non-video items skipped)", len(videos))
	}

	v := videos[0]
	if v.ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q", v.ID)
	}
	if v.Title != "Investing Basics" {
		t.Errorf("Title = %q, want joined runs", v.Title)
	}
	if v.Views != 1_200_000 {
		t.Errorf("Views = %d, want 1200000", v.Views)
	}
	if v.UploadedAt != "3 weeks ago" {
		t.Errorf("UploadedAt = %q", v.UploadedAt)
	}
	if v.Duration != "12:34" {
		t.Errorf("Duration = %q", v.Duration)
	}
	if v.Thumbnail != "large.jpg" {
		t.Errorf("Thumbnail = %q, want the largest variant", v.Thumbnail)
	}
	if v.ChannelName != "Finance Channel" || v.ChannelID != "UCabc123" {
		t.Errorf("channel = %q/%q", v.ChannelName, v.ChannelID)
	}
	if !v.ChannelVerified {
		t.Error("verified badge should be detected")
	}
	if v.Snippet != "Learn how to invest." {
		t.Errorf("Snippet = %q", v.Snippet)
	}
}

func TestExtractInitialData_Missing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><script>var x = 1;</script></html>"))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	if _, err := extractInitialData(doc); err == nil {
		t.Error("expected an error when ytInitialData is absent")
	}
}
