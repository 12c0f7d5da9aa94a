package model

// CandidateVideo is one competitor search result considered as evidence for
// the market, competition and monetization metrics. Request-scoped; unique
// by ID within one analysis.
type CandidateVideo struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Views              int64  `json:"views"`
	UploadedAt         string `json:"uploadedAt"`
	Duration           string `json:"duration"`
	Thumbnail          string `json:"thumbnail"`
	ChannelName        string `json:"channelName"`
	ChannelID          string `json:"channelId"`
	ChannelSubscribers int64  `json:"channelSubscribers"`
	ChannelVerified    bool   `json:"channelVerified"`

	// Snippet is the search-result description excerpt. Only used for
	// relevance filtering, not part of the analysis response.
	Snippet string `json:"-"`
}

// ChannelKey returns the grouping key used when aggregating per channel.
// Some search results carry no channel ID; the name is the next best key.
func (v CandidateVideo) ChannelKey() string {
	if v.ChannelID != "" {
		return v.ChannelID
	}
	return v.ChannelName
}
