package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/SanaUllah13/youtools-go/internal/middleware"
	"github.com/SanaUllah13/youtools-go/internal/model"
)

// ExternalClassifier is the optional LLM-backed classification collaborator.
// It may fail or return malformed output; callers fall back to rules.
type ExternalClassifier interface {
	Classify(ctx context.Context, title, description string) (*model.NicheHierarchy, error)
}

// ClassifierService maps a title/description pair to a niche hierarchy.
// The rule-based path is always available and deterministic; when an
// external classifier is configured it is tried first.
type ClassifierService struct {
	table    []nicheDef
	external ExternalClassifier
}

// NewClassifierService builds a classifier over the package niche table.
// external may be nil.
func NewClassifierService(external ExternalClassifier) *ClassifierService {
	return &ClassifierService{table: nicheTable, external: external}
}

// Classify resolves the niche hierarchy for the given text. Never returns an
// error: external-classifier failures degrade to the rule-based result.
func (s *ClassifierService) Classify(ctx context.Context, title, description string) model.NicheHierarchy {
	if s.external != nil {
		h, err := s.external.Classify(ctx, title, description)
		if err == nil && h != nil {
			return h.Normalized()
		}
		middleware.Logger.Warn().Err(err).Msg("external classifier failed, using rules")
	}
	return s.ClassifyRules(title, description)
}

// currencyRe matches dollar amounts ("$1,500") and compact money figures
// ("10k", "2.5m") used by the low-confidence finance heuristic.
var currencyRe = regexp.MustCompile(`\$[0-9][0-9,]*|\b[0-9]+(?:\.[0-9]+)?[kmb]\b`)

// ClassifyRules is the deterministic keyword-scoring path. Worst case it
// returns the general hierarchy; it never fails.
func (s *ClassifierService) ClassifyRules(title, description string) model.NicheHierarchy {
	titleLower := strings.ToLower(title)
	combined := titleLower + " " + strings.ToLower(description)

	var best *nicheDef
	bestScore := 0
	for i := range s.table {
		score := scoreKeywords(s.table[i].keywords, combined, titleLower, 2)
		if score > bestScore {
			bestScore = score
			best = &s.table[i]
		}
	}

	if bestScore < lowConfidenceThreshold {
		return s.contextualFallback(titleLower, combined)
	}

	sub := best.name
	bestSubScore := 0
	for _, cand := range best.subs {
		// Title matches weigh heavier at the sub-niche tier to pick the
		// most specific label.
		score := scoreKeywords(cand.keywords, combined, titleLower, 3)
		if score > bestSubScore {
			bestSubScore = score
			sub = cand.name
		}
	}

	return buildHierarchy(best.name, sub)
}

// scoreKeywords sums weighted keyword hits: longer keywords score higher,
// and a hit in the title multiplies the weight.
func scoreKeywords(keywords []string, combined, title string, titleMultiplier int) int {
	score := 0
	for _, kw := range keywords {
		if !strings.Contains(combined, kw) {
			continue
		}
		w := keywordWeight(kw)
		if strings.Contains(title, kw) {
			w *= titleMultiplier
		}
		score += w
	}
	return score
}

func keywordWeight(kw string) int {
	switch {
	case len(kw) >= 12:
		return 3
	case len(kw) >= 6:
		return 2
	default:
		return 1
	}
}

// contextualFallback applies heuristics in priority order when keyword
// scoring found nothing convincing.
func (s *ClassifierService) contextualFallback(title, combined string) model.NicheHierarchy {
	if currencyRe.MatchString(combined) {
		return buildHierarchy("finance", "finance")
	}
	if strings.Contains(title, " vs ") || strings.Contains(title, " v ") {
		return buildHierarchy("sports", "sports")
	}
	if strings.Contains(combined, "tutorial") || strings.Contains(combined, "how to") || strings.Contains(combined, "course") {
		for _, kw := range []string{"code", "coding", "software", "app", "tech", "computer", "python", "javascript"} {
			if strings.Contains(combined, kw) {
				return buildHierarchy("technology", "programming")
			}
		}
		return buildHierarchy("education", "education")
	}
	return buildHierarchy(model.GeneralNiche, model.GeneralNiche)
}

// buildHierarchy assembles the final hierarchy with display name and
// search keywords for a classified niche.
func buildHierarchy(main, sub string) model.NicheHierarchy {
	var keywords []string
	if sub != main && sub != model.GeneralNiche {
		keywords = []string{sub, sub + " for beginners", main}
	} else {
		keywords = []string{main, main + " tips"}
	}
	return model.NicheHierarchy{
		MainNiche:      main,
		SubNiche:       sub,
		DisplayName:    model.BuildDisplayName(main, sub),
		SearchKeywords: keywords,
	}.Normalized()
}
