package service

import "testing"

func TestExtract_VideoURLs(t *testing.T) {
	ex := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url without scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare video id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare id with underscore and dash", "a1_b2-c3d4e", "a1_b2-c3d4e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ex.Extract(tt.input)
			if ref.Kind != RefVideo {
				t.Fatalf("Extract(%q).Kind = %s, want video", tt.input, ref.Kind)
			}
			if ref.Value != tt.want {
				t.Errorf("Extract(%q).Value = %q, want %q", tt.input, ref.Value, tt.want)
			}
		})
	}
}

func TestExtract_ChannelURLs(t *testing.T) {
	ex := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"channel id url", "https://www.youtube.com/channel/UC1234abcd", "UC1234abcd"},
		{"custom url", "https://www.youtube.com/c/SomeChannel", "SomeChannel"},
		{"legacy user url", "https://www.youtube.com/user/oldname", "oldname"},
		{"handle url", "https://www.youtube.com/@mkbhd", "mkbhd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ex.Extract(tt.input)
			if ref.Kind != RefChannel {
				t.Fatalf("Extract(%q).Kind = %s, want channel", tt.input, ref.Kind)
			}
			if ref.Value != tt.want {
				t.Errorf("Extract(%q).Value = %q, want %q", tt.input, ref.Value, tt.want)
			}
		})
	}
}

func TestExtract_Topics(t *testing.T) {
	ex := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain keywords", "personal finance", "personal finance"},
		{"lowercased", "Personal Finance", "personal finance"},
		{"trimmed", "  crypto trading  ", "crypto trading"},
		// 11-character plain word must not be mistaken for a video id
		{"eleven letter word", "programming", "programming"},
		{"non-youtube url", "https://example.com/watch?v=dQw4w9WgXcQ", "https://example.com/watch?v=dqw4w9wgxcq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ex.Extract(tt.input)
			if ref.Kind != RefTopic {
				t.Fatalf("Extract(%q).Kind = %s, want topic", tt.input, ref.Kind)
			}
			if ref.Value != tt.want {
				t.Errorf("Extract(%q).Value = %q, want %q", tt.input, ref.Value, tt.want)
			}
		})
	}
}
