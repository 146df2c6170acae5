package port

// LanguageDetector names the language of a text sample.
// An empty string means the language could not be determined.
type LanguageDetector interface {
	Detect(text string) string
}
