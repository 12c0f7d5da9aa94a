package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// subscriberRe matches the compact subscriber count rendered on channel
// pages, e.g. "1.2M subscribers" or "54,300 subscribers".
var subscriberRe = regexp.MustCompile(`"([0-9][0-9.,]*[KMB]?) subscribers"`)

// ChannelClient fetches channel pages to fill in subscriber counts that the
// search results page does not carry.
type ChannelClient struct {
	http      *http.Client
	userAgent string
}

func NewChannelClient() *ChannelClient {
	return &ChannelClient{
		http:      &http.Client{Timeout: 10 * time.Second},
		userAgent: defaultUserAgent,
	}
}

// SubscriberCount scrapes the subscriber count for a channel ID. Best
// effort: any parse or transport failure returns an error the caller is
// expected to swallow.
func (c *ChannelClient) SubscriberCount(ctx context.Context, channelID string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://www.youtube.com/channel/"+channelID+"/about", nil)
	if err != nil {
		return 0, fmt.Errorf("build channel request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("channel %s: %w", channelID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("channel %s: unexpected status %d", channelID, resp.StatusCode)
	}

	// 2MB is plenty; the count appears in the page header metadata.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return 0, fmt.Errorf("channel %s: read body: %w", channelID, err)
	}

	m := subscriberRe.FindSubmatch(body)
	if m == nil {
		return 0, fmt.Errorf("channel %s: subscriber count not found", channelID)
	}
	return ParseViewCount(string(m[1])), nil
}
