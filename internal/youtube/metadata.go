package youtube

import (
	"context"
	"fmt"

	kkdai "github.com/kkdai/youtube/v2"
)

// VideoMetadata is the slice of source-video detail the classifier needs.
type VideoMetadata struct {
	Title       string
	Description string
	ChannelID   string
	ChannelName string
}

// MetadataClient resolves a video ID to its title and description, used to
// re-classify on richer text than the raw user input.
type MetadataClient struct {
	client kkdai.Client
}

func NewMetadataClient() *MetadataClient {
	return &MetadataClient{}
}

// GetVideoMetadata fetches metadata for one video. Failures here are
// recoverable upstream: the analysis continues on the raw-input
// classification.
func (m *MetadataClient) GetVideoMetadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	video, err := m.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("video metadata %s: %w", videoID, err)
	}
	return &VideoMetadata{
		Title:       video.Title,
		Description: video.Description,
		ChannelID:   video.ChannelID,
		ChannelName: video.Author,
	}, nil
}
