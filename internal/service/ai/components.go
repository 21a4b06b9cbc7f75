package ai

import "fmt"

// ResolveContentTypes normalizes a requested component list: unknown
// identifiers are dropped, duplicates removed, and hero is always present
// in position 0 regardless of where (or whether) it appeared in the input.
func ResolveContentTypes(components []string) []string {
	resolved := []string{ComponentHero}
	seen := map[string]bool{ComponentHero: true}
	for _, c := range components {
		if !ValidComponentType(c) || seen[c] {
			continue
		}
		seen[c] = true
		resolved = append(resolved, c)
	}
	return resolved
}

// ComponentExamples renders the JSON skeleton snippet for each content type,
// preserving input order. The snippets end up inside the generatedSections
// array of the output structure the model is asked to return.
func ComponentExamples(contentTypes []string) []string {
	examples := make([]string, 0, len(contentTypes))
	for _, t := range contentTypes {
		if example, ok := componentExample(t); ok {
			examples = append(examples, example)
		}
	}
	return examples
}

func componentExample(componentType string) (string, bool) {
	switch componentType {
	case ComponentHero:
		return heroExample, true
	case ComponentFAQs:
		return faqsExample, true
	case ComponentSEOText:
		return seoTextExample, true
	}
	return "", false
}

var heroExample = fmt.Sprintf(`    {
      "type": "hero",
      "h1": "Headline based on main keywords (max %d chars, Title Case)",
      "description": "Short supporting hero copy",
      "ctaText": "",
      "ctaLink": ""
    }`, H1Max)

var faqsExample = fmt.Sprintf(`    {
      "type": "faqs",
      "items": [
        {
          "question": "Question in sentence case (%s of them total)?",
          "answer": "Helpful answer, may contain internal links"
        }
      ]
    }`, FAQQuestionsRange)

var seoTextExample = fmt.Sprintf(`    {
      "type": "seoText",
      "title": "Section heading in sentence case",
      "body": "Body copy of %d-%d characters with markdown-style internal links",
      "imagePosition": "left | right | left depending on section index",
      "imageAltText": ""
    }`, SEOTextMinChars, SEOTextMaxChars)
