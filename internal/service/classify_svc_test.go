package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

func TestClassifyRules_KeywordScoring(t *testing.T) {
	svc := NewClassifierService(nil)

	tests := []struct {
		name     string
		title    string
		desc     string
		wantMain string
		wantSub  string
	}{
		{
			"bare niche name",
			"personal finance", "",
			"finance", "personal finance",
		},
		{
			"budgeting content",
			"How to Budget and Save Money", "",
			"finance", "personal finance",
		},
		{
			"crypto content",
			"Bitcoin vs Ethereum: Which Crypto Should You Buy?", "",
			"finance", "cryptocurrency",
		},
		{
			"programming content",
			"Python Programming Tutorial for Beginners", "",
			"technology", "programming",
		},
		{
			"fitness content",
			"Full Body Workout at the Gym for Muscle Growth", "",
			"fitness", "bodybuilding",
		},
		{
			"cooking content",
			"Easy Sourdough Bread Baking Recipe", "",
			"cooking", "baking",
		},
		{
			"gaming content",
			"Minecraft Survival Gameplay Episode 1", "",
			"gaming", "minecraft",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := svc.ClassifyRules(tt.title, tt.desc)
			if h.MainNiche != tt.wantMain {
				t.Errorf("MainNiche = %q, want %q", h.MainNiche, tt.wantMain)
			}
			if h.SubNiche != tt.wantSub {
				t.Errorf("SubNiche = %q, want %q", h.SubNiche, tt.wantSub)
			}
		})
	}
}

func TestClassifyRules_ContextualFallback(t *testing.T) {
	svc := NewClassifierService(nil)

	tests := []struct {
		name     string
		title    string
		desc     string
		wantMain string
		wantSub  string
	}{
		{"money figures imply finance", "I turned 10k into 50k in a year", "", "finance", "finance"},
		{"dollar amounts imply finance", "Living on $1,500 a year", "", "finance", "finance"},
		{"versus implies sports", "TeamA vs TeamB full replay", "", "sports", "sports"},
		{"tech tutorial in description", "untitled clip", "a quick tutorial about code", "technology", "programming"},
		{"nothing recognizable", "zxqwv blorp", "", "general", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := svc.ClassifyRules(tt.title, tt.desc)
			if h.MainNiche != tt.wantMain {
				t.Errorf("MainNiche = %q, want %q", h.MainNiche, tt.wantMain)
			}
			if h.SubNiche != tt.wantSub {
				t.Errorf("SubNiche = %q, want %q", h.SubNiche, tt.wantSub)
			}
		})
	}
}

func TestClassifyRules_Deterministic(t *testing.T) {
	svc := NewClassifierService(nil)

	title := "Bitcoin Investing for Beginners"
	first := svc.ClassifyRules(title, "")
	for i := 0; i < 5; i++ {
		again := svc.ClassifyRules(title, "")
		if again.MainNiche != first.MainNiche || again.SubNiche != first.SubNiche {
			t.Fatalf("run %d classified %s/%s, first run was %s/%s",
				i, again.MainNiche, again.SubNiche, first.MainNiche, first.SubNiche)
		}
	}
}

func TestClassifyRules_DisplayNameAndKeywords(t *testing.T) {
	svc := NewClassifierService(nil)

	h := svc.ClassifyRules("Python Programming Tutorial for Beginners", "")
	if h.DisplayName != "Programming (Technology)" {
		t.Errorf("DisplayName = %q, want %q", h.DisplayName, "Programming (Technology)")
	}
	if len(h.SearchKeywords) == 0 {
		t.Fatal("SearchKeywords should never be empty")
	}
	if h.SearchKeywords[0] != "programming" {
		t.Errorf("first search keyword = %q, want %q", h.SearchKeywords[0], "programming")
	}
}

type stubClassifier struct {
	h   *model.NicheHierarchy
	err error
}

func (s *stubClassifier) Classify(ctx context.Context, title, description string) (*model.NicheHierarchy, error) {
	return s.h, s.err
}

func TestClassify_PrefersExternal(t *testing.T) {
	external := &stubClassifier{h: &model.NicheHierarchy{
		MainNiche:      "Finance",
		SubNiche:       "Real Estate",
		SearchKeywords: []string{"real estate investing"},
	}}
	svc := NewClassifierService(external)

	h := svc.Classify(context.Background(), "anything", "")
	if h.MainNiche != "finance" || h.SubNiche != "real estate" {
		t.Errorf("got %s/%s, want finance/real estate (normalized external result)", h.MainNiche, h.SubNiche)
	}
}

func TestClassify_FallsBackOnExternalError(t *testing.T) {
	external := &stubClassifier{err: errors.New("upstream timeout")}
	svc := NewClassifierService(external)

	h := svc.Classify(context.Background(), "Bitcoin Investing for Beginners", "")
	if h.MainNiche != "finance" {
		t.Errorf("MainNiche = %q, want finance from the rule-based fallback", h.MainNiche)
	}
}
