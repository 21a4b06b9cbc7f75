package ai

import (
	"fmt"
	"strings"
	"time"
)

// Each builder in this file renders one self-contained paragraph of the final
// prompt. Builders take scalar inputs and compose text only; selection and
// ordering happen in prompt.go.

func baseInstructions(p PromptParams) string {
	questionsLine := ""
	if containsType(p.ContentTypes, ComponentFAQs) {
		if p.Questions != "" {
			questionsLine = fmt.Sprintf("\nQuestions: %s (These will be prioritized in FAQ generation)", p.Questions)
		} else {
			questionsLine = "\nQuestions: Not provided (FAQ questions will be AI-generated based on keywords)"
		}
	}

	secondary := p.SecondaryKeywords
	if secondary == "" {
		secondary = "Not provided"
	}

	return fmt.Sprintf(`Write a landing page for Blacklane with these parameters:

Main keywords: %s
Secondary keyword: %s%s
Language: %s
Content types needed: %s%s`,
		p.MainKeywords, secondary, questionsLine, p.Language,
		strings.Join(p.ContentTypes, ", "), p.ContextInfo)
}

func linkRequirements(language, mainKeywords string) string {
	return fmt.Sprintf(`Links: Include related Blacklane minimum %d unique links within the text by naturally placing them as anchor text.

CRITICAL LINK REQUIREMENTS:
- You MUST only use URLs that exist in the Blacklane sitemap. Before including any link, verify it exists at: %s
- ABSOLUTELY NO DUPLICATE LINKS - each URL can only be used ONCE across all content
- If you need to reference the same service/location again, use different anchor text but DO NOT repeat the same URL

Focus on URLs that match the language (%s) and are relevant to the main keyword "%s".`,
		MinInternalLinks, SitemapURL, language, mainKeywords)
}

// urlPatternTemplates maps languages with hand-localized sitemap paths.
// Every other language falls through to genericURLPatterns.
var urlPatternTemplates = map[string][]string{
	"de": {
		"City pages: /de/staedte-[city-name]/",
		"Limousine service: /de/limousinenservice-[location]/",
		"Chauffeur service: /de/chauffeurservice-[location]/",
		"Airport transfers: /de/flughafentransfer-[city]/",
	},
	"fr": {
		"City pages: /fr/villes-[city-name]/",
		"Limousine service: /fr/service-vtc-[location]/",
		"Chauffeur service: /fr/chauffeur-prive-[location]/",
		"Airport transfers: /fr/transfert-aeroport-[city]/",
	},
}

func genericURLPatterns(language string) []string {
	return []string{
		fmt.Sprintf("City pages: /%s/cities-[city-name]/", language),
		fmt.Sprintf("Limousine service: /%s/limousine-service-[location]/", language),
		fmt.Sprintf("Chauffeur service: /%s/chauffeur-service-[location]/", language),
		fmt.Sprintf("Airport transfers: /%s/airport-transfer-[city]/", language),
	}
}

func languageURLPatterns(language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `LANGUAGE-SPECIFIC URL PATTERNS:
Based on the language code "%s", use these localized URL patterns:

`, language)

	b.WriteString("German (de):\n")
	writePatterns(&b, urlPatternTemplates["de"])
	b.WriteString("\nFrench (fr):\n")
	writePatterns(&b, urlPatternTemplates["fr"])
	b.WriteString("\nEnglish (en) and Spanish (es):\n")
	writePatterns(&b, genericURLPatterns(language))

	fmt.Fprintf(&b, "\nAlways use the correct localized URL pattern that matches the content language \"%s\"", language)
	return b.String()
}

func writePatterns(b *strings.Builder, patterns []string) {
	for _, p := range patterns {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}
}

// linkFormattingExample is a static before/after demonstrating correct
// markdown anchor usage. Constant text, not derived from request parameters.
const linkFormattingExample = `Example of proper link formatting:

Singapore is one of the most economically powerful countries in Asia and one of the world's busiest ports, making it a major destination for international business travelers. It's no surprise, then, that it's also [one of the best airports in the world](https://blog.blacklane.com/travel/airports/singapore-airport-the-best-in-the-world/). Getting into such a bustling city from the Changi Airport (SIN) can quickly become stressful, especially when working you're under the pressure of time constraints, but there's no need for your Singapore airport transfers to be difficult - consider an [alternative to a Singapore taxi](/en/singapore).`

func jsonStructure(mainKeywords, secondaryKeywords, language string, componentExamples []string) string {
	return fmt.Sprintf(`RETURN ONLY VALID JSON (no markdown, no prose):
{
  "mainKeywords": "%s",
  "secondaryKeywords": "%s",
  "language": "%s",
  "metaTitle": "SEO optimized title based on primary keywords (max %d chars)",
  "metaDescription": "SEO optimized description based on main and secondary keywords (max %d chars)",
  "generatedSections": [
%s
  ],
  "metadata": {
    "keywordsUsed": ["keyword1", "keyword2"],
    "internalLinksUsed": ["link1", "link2", "link3"],
    "generatedAt": "%s"
  }
}`,
		mainKeywords, secondaryKeywords, language,
		MetaTitleMax, MetaDescriptionMax,
		strings.Join(componentExamples, ",\n"),
		time.Now().UTC().Format(time.RFC3339))
}

func heroRequirements() string {
	return `- Hero components: Do NOT generate CTA text, CTA links, or CTA buttons - leave these empty`
}

func faqRequirements() string {
	return fmt.Sprintf(`- FAQ: Generate %s questions total. If questions are provided in the "Questions" field, use those FIRST as priority questions. If provided questions are fewer than %s, supplement with AI-generated questions relevant to the keywords to reach the recommended %s total questions. If no questions are provided, generate %s relevant questions based on keywords.
- FAQ questions: Normal sentence case (e.g. How can I book a ride?) - NOT Title Case`,
		FAQQuestionsRange, FAQQuestionsRange, FAQQuestionsRange, FAQQuestionsRange)
}

func seoTextRequirements() string {
	return fmt.Sprintf(`- Body copy: minimum %d characters, maximum %d characters per seoText section
- CRITICAL: If seoText is requested, generate EXACTLY %d seoText sections with unique content
- CRITICAL: For seoText components, use alternating imagePosition pattern: 1st section = "%s", 2nd section = "%s", 3rd section = "%s" (checkerboard pattern)
- CRITICAL: For seoText components, do NOT generate imageAltText or assign images - leave these fields empty`,
		SEOTextMinChars, SEOTextMaxChars, SEOTextSectionCount,
		SEOTextImagePositions[0], SEOTextImagePositions[1], SEOTextImagePositions[2])
}

func faqGenerationInstructions(questions string) string {
	if questions != "" {
		return fmt.Sprintf(`PRIORITIZE these provided questions: "%s". Use these as your primary FAQ questions, then supplement with additional AI-generated questions if needed to reach %s total questions.`, questions, FAQQuestionsRange)
	}
	return fmt.Sprintf("No specific questions provided - generate %s relevant FAQ questions based on the main keywords and topic.", FAQQuestionsRange)
}

func formattingRequirements(language, mainKeywords, secondaryKeywords string) string {
	secondary := secondaryKeywords
	if secondary == "" {
		secondary = "None provided"
	}

	return fmt.Sprintf(`Requirements:
- Meta title: Maximum %d characters, based on primary keywords, Title Case (e.g. %s)
  Examples of good meta titles:
  - "Airport Transfer in New York - Reliable Chauffeured Rides"
  - "Limo Service in NYC - Chauffeured, Private Rides"
  - "Car Service Between NYC and Boston"
  - "Professional Chauffeur Service in Santa Monica"
- Meta description: Maximum %d characters, based on main and secondary keywords
- H1: max %d characters Title Case (e.g. %s) - ONLY for H1 titles
- H2: Normal sentence case (e.g. %s) - NOT Title Case
- CRITICAL: Include minimum %d unique Blacklane links within the text by naturally placing them as anchor text
- CRITICAL: Each URL must be used only ONCE - NO DUPLICATE LINKS allowed anywhere in the content
- CRITICAL: Before adding any link, verify it exists in %s - DO NOT create or invent URLs
- Use markdown-style links in text: [anchor text](url)
- Prioritize links that match the language "%s" and main keyword "%s"
- Ensure all %d+ links point to different, unique URLs - never repeat the same URL
- Also include local, relevant information to tourists and locals about the area - tourist hotspots, cultural info, etc
- Make content relevant to the main keywords: "%s"
- Use provided main keywords: "%s"
- Use provided secondary keywords: "%s"
- Return only valid JSON object
- Use %s language for all content
- In metadata.internalLinksUsed, list all internal links you included`,
		MetaTitleMax, TitleCaseExample,
		MetaDescriptionMax,
		H1Max, TitleCaseExample,
		SentenceCaseExample,
		MinInternalLinks,
		SitemapURL,
		language, mainKeywords,
		MinInternalLinks,
		mainKeywords, mainKeywords, secondary,
		language)
}
