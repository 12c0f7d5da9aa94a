package service

import (
	"regexp"
	"strings"
)

// RefKind tags what the analyzer input resolved to.
type RefKind string

const (
	RefVideo   RefKind = "video"
	RefChannel RefKind = "channel"
	RefTopic   RefKind = "topic"
)

// Ref is a typed reference extracted from free-form input.
type Ref struct {
	Kind  RefKind
	Value string
}

var (
	// watchRe captures the 11-character video id from the known URL shapes.
	watchRe = regexp.MustCompile(`(?:youtube\.com/watch\?(?:[^#\s]*&)?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`)
	// bareIDRe matches a bare video id with no surrounding URL.
	bareIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	// channelRe matches the channel URL shapes: /channel/ID, /c/name, /user/name, /@handle.
	channelRe = regexp.MustCompile(`youtube\.com/(?:channel/([A-Za-z0-9_-]+)|c/([^/?#\s]+)|user/([^/?#\s]+)|@([^/?#\s]+))`)
)

// Extractor parses free-form input (URL or keywords) into a typed reference.
// Pure string work, no network. Never fails: anything unrecognized is a topic.
type Extractor struct{}

func NewExtractor() Extractor {
	return Extractor{}
}

func (Extractor) Extract(input string) Ref {
	input = strings.TrimSpace(input)

	if m := watchRe.FindStringSubmatch(input); m != nil {
		return Ref{Kind: RefVideo, Value: m[1]}
	}
	if bareIDRe.MatchString(input) && !looksLikeWord(input) {
		return Ref{Kind: RefVideo, Value: input}
	}
	if m := channelRe.FindStringSubmatch(input); m != nil {
		for _, group := range m[1:] {
			if group != "" {
				return Ref{Kind: RefChannel, Value: group}
			}
		}
	}

	return Ref{Kind: RefTopic, Value: strings.ToLower(input)}
}

// looksLikeWord filters 11-character plain words ("programming") that would
// otherwise be mistaken for video ids. Real ids mix cases or carry digits.
func looksLikeWord(s string) bool {
	lower := strings.ToLower(s)
	if s != lower {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
