package templates

import (
	"fmt"
	"regexp"
)

// Catalog returns the library of pre-built prompt templates, grouped by
// category. Placeholders use single-brace {name} markers.
func Catalog() map[string]map[string]string {
	return map[string]map[string]string{
		"Translation": {
			"Simple":  "Translate the following text to {language}: {text}",
			"Formal":  "Provide a formal translation of this text to {language}, maintaining professional tone: {text}",
			"Context": "Translate this {context} text to {language}: {text}",
		},
		"Summarization": {
			"Brief":         "Summarize this in 2-3 sentences: {text}",
			"Bullet Points": "Summarize the key points as a bullet list: {text}",
			"Executive":     "Provide an executive summary highlighting main insights: {text}",
		},
		"Code": {
			"Explain":  "Explain what this code does in simple terms: {code}",
			"Debug":    "Find and explain the bug in this code: {code}",
			"Optimize": "Suggest optimizations for this code: {code}",
			"Convert":  "Convert this code from {from_lang} to {to_lang}: {code}",
		},
		"Creative Writing": {
			"Story":    "Write a {length} story about {topic} in the style of {style}",
			"Poem":     "Write a {type} poem about {topic}",
			"Dialogue": "Write a dialogue between {character1} and {character2} about {topic}",
		},
		"Analysis": {
			"Pros and Cons": "Analyze the pros and cons of {topic}",
			"Compare":       "Compare and contrast {item1} and {item2}",
			"SWOT":          "Perform a SWOT analysis of {topic}",
		},
		"Business": {
			"Email":    "Write a {tone} email about {topic} to {recipient}",
			"Proposal": "Draft a business proposal for {project}",
			"Report":   "Create an executive report on {topic}",
		},
	}
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Fill substitutes the given values into the named template. Every
// placeholder referenced by the template must have a value; the first
// missing one is reported by name.
func Fill(category string, name string, values map[string]string) (string, error) {
	catalog := Catalog()

	group, ok := catalog[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	tmpl, ok := group[name]
	if !ok {
		return "", fmt.Errorf("%w: %q in category %q", ErrTemplateNotFound, name, category)
	}

	var missing string
	filled := placeholderPattern.ReplaceAllStringFunc(tmpl, func(marker string) string {
		variable := marker[1 : len(marker)-1]
		value, ok := values[variable]
		if !ok {
			if missing == "" {
				missing = variable
			}
			return marker
		}
		return value
	})

	if missing != "" {
		return "", &MissingVariableError{Variable: missing}
	}

	return filled, nil
}
