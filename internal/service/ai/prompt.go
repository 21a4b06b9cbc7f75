package ai

import "strings"

// PromptParams is the fully-resolved argument bundle for prompt assembly.
// ComponentExamples must be ordered the same way as ContentTypes so the JSON
// skeleton lists sections in the order the caller selected them.
type PromptParams struct {
	MainKeywords      string
	SecondaryKeywords string
	Questions         string
	Language          string
	ContentTypes      []string
	ContextInfo       string
	ComponentExamples []string
}

// promptFragment is one optional section of the assembled prompt. A nil
// predicate means the fragment is always included. Fragments whose predicate
// fails are omitted entirely, never rendered empty.
type promptFragment struct {
	when   func(PromptParams) bool
	render func(PromptParams) string
}

// promptFragments fixes the assembly order. The model must see task framing
// and link rules before the rigid JSON contract; the component requirement
// block sits between the JSON skeleton and the formatting checklist, always
// in seoText, hero, faqs order. Reorder only if output compatibility with
// existing prompt snapshots does not matter.
var promptFragments = []promptFragment{
	{render: baseInstructions},
	{render: func(p PromptParams) string {
		return linkRequirements(p.Language, p.MainKeywords)
	}},
	{render: func(p PromptParams) string {
		return languageURLPatterns(p.Language)
	}},
	{render: func(PromptParams) string {
		return linkFormattingExample
	}},
	{render: func(p PromptParams) string {
		return jsonStructure(p.MainKeywords, p.SecondaryKeywords, p.Language, p.ComponentExamples)
	}},
	{when: hasSEOText, render: func(PromptParams) string {
		return seoTextRequirements()
	}},
	{when: hasHero, render: func(PromptParams) string {
		return heroRequirements()
	}},
	{when: hasFAQs, render: func(PromptParams) string {
		return faqRequirements()
	}},
	{render: func(p PromptParams) string {
		return formattingRequirements(p.Language, p.MainKeywords, p.SecondaryKeywords)
	}},
	{when: hasFAQs, render: func(p PromptParams) string {
		return "- For FAQ generation: " + faqGenerationInstructions(p.Questions)
	}},
}

// BuildContentGenerationPrompt assembles the complete generation prompt.
// It never fails: absent optional fields degrade to "Not provided" style
// placeholders inside the individual fragments.
func BuildContentGenerationPrompt(params PromptParams) string {
	sections := make([]string, 0, len(promptFragments))
	for _, f := range promptFragments {
		if f.when != nil && !f.when(params) {
			continue
		}
		sections = append(sections, f.render(params))
	}
	return strings.Join(sections, "\n\n")
}

func hasHero(p PromptParams) bool    { return containsType(p.ContentTypes, ComponentHero) }
func hasFAQs(p PromptParams) bool    { return containsType(p.ContentTypes, ComponentFAQs) }
func hasSEOText(p PromptParams) bool { return containsType(p.ContentTypes, ComponentSEOText) }

func containsType(types []string, t string) bool {
	for _, ct := range types {
		if ct == t {
			return true
		}
	}
	return false
}
