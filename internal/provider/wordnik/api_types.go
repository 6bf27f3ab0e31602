package wordnik

// apiDefinition is a single record of the Wordnik definitions response.
// The endpoint returns a JSON array of these. Records may lack a text
// field (Wordnik emits bare attribution stubs for some sources).
type apiDefinition struct {
	Text             string `json:"text"`
	PartOfSpeech     string `json:"partOfSpeech"`
	SourceDictionary string `json:"sourceDictionary"`
	AttributionText  string `json:"attributionText"`
}
