package provider

// Definition is a single definition record returned by a dictionary API
// provider. Only Text is guaranteed to be non-empty; the remaining fields
// pass through whatever the provider reported.
type Definition struct {
	Text         string
	PartOfSpeech string
	Source       string
	Attribution  string
}
