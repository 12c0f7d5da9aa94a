package model

import "strings"

// NicheHierarchy describes the content category an analysis resolved to:
// a main category, its most specific sub-category, a display label, and the
// keywords used to search for competitor videos. Immutable once built.
type NicheHierarchy struct {
	MainNiche      string   `json:"mainNiche"`
	SubNiche       string   `json:"subNiche"`
	DisplayName    string   `json:"displayName"`
	SearchKeywords []string `json:"searchKeywords"`
}

// GeneralNiche is the catch-all category used when classification
// cannot resolve anything more specific.
const GeneralNiche = "general"

// IsGeneral reports whether the hierarchy carries no real signal.
func (h NicheHierarchy) IsGeneral() bool {
	return h.MainNiche == GeneralNiche || h.MainNiche == ""
}

// Normalized returns a copy with lowercased category tags and a guaranteed
// non-empty SearchKeywords slice (falling back to [subNiche, mainNiche]).
func (h NicheHierarchy) Normalized() NicheHierarchy {
	h.MainNiche = strings.ToLower(strings.TrimSpace(h.MainNiche))
	h.SubNiche = strings.ToLower(strings.TrimSpace(h.SubNiche))
	if h.MainNiche == "" {
		h.MainNiche = GeneralNiche
	}
	if h.SubNiche == "" {
		h.SubNiche = h.MainNiche
	}
	if h.DisplayName == "" {
		h.DisplayName = BuildDisplayName(h.MainNiche, h.SubNiche)
	}

	keywords := make([]string, 0, len(h.SearchKeywords))
	for _, kw := range h.SearchKeywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, strings.ToLower(kw))
		}
	}
	if len(keywords) == 0 {
		keywords = []string{h.SubNiche, h.MainNiche}
	}
	h.SearchKeywords = keywords
	return h
}

// HierarchyFromTopic builds a hierarchy from a bare topic string. This is the
// boundary constructor for the legacy plain-string call sites: the topic
// becomes both main and sub niche so scoring functions never see raw strings.
func HierarchyFromTopic(topic string) NicheHierarchy {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		topic = GeneralNiche
	}
	return NicheHierarchy{
		MainNiche:      topic,
		SubNiche:       topic,
		DisplayName:    Capitalize(topic),
		SearchKeywords: []string{topic},
	}
}

// BuildDisplayName renders "{SubNiche} ({MainNiche})" when the sub-niche adds
// information, otherwise just the capitalized main niche.
func BuildDisplayName(mainNiche, subNiche string) string {
	if subNiche != "" && subNiche != mainNiche && subNiche != GeneralNiche {
		return Capitalize(subNiche) + " (" + Capitalize(mainNiche) + ")"
	}
	return Capitalize(mainNiche)
}

// Capitalize upper-cases the first letter of each word.
func Capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
