package ai

// Component types a caller may request for a generated landing page.
const (
	ComponentHero    = "hero"
	ComponentFAQs    = "faqs"
	ComponentSEOText = "seoText"
)

// FAQ configuration.
const (
	FAQMinQuestions   = 5
	FAQMaxQuestions   = 6
	FAQQuestionsRange = "5-6"
)

// SEO character limits for meta fields.
const (
	MetaTitleMax       = 60
	MetaDescriptionMax = 150
	H1Max              = 30
)

// Body copy length bounds per seoText section.
const (
	SEOTextMinChars = 700
	SEOTextMaxChars = 1050
)

// SEOTextSectionCount is the exact number of seoText sections requested
// from the model when seoText is among the content types.
const SEOTextSectionCount = 3

// SEOTextImagePositions is the fixed checkerboard assignment by section index.
var SEOTextImagePositions = [SEOTextSectionCount]string{"left", "right", "left"}

// Link rules.
const (
	MinInternalLinks = 3
	SitemapURL       = "https://www.blacklane.com/sitemap.xml"
)

// Worked casing examples referenced by the formatting rules.
const (
	TitleCaseExample    = "Hello World"
	SentenceCaseExample = "Hello world"
)

// ValidComponentType reports whether t is a known component type.
func ValidComponentType(t string) bool {
	switch t {
	case ComponentHero, ComponentFAQs, ComponentSEOText:
		return true
	}
	return false
}
