package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage guesses the language of an article body for the language
// column. Returns an empty string when the content gives no usable signal.
func DetectLanguage(content string) string {
	if len(content) == 0 {
		return ""
	}

	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.French,
				lingua.German,
				lingua.Spanish,
				lingua.Italian,
			).
			Build()
	})

	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return language.IsoCode639_1().String()
	}
	return ""
}
