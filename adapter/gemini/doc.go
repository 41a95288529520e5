// Package gemini implements contentgen.Model over the Google Gemini API (google.golang.org/genai).
//
// The genai client handle is built lazily on the first Generate call, so New never fails and
// never touches the network; a missing or invalid API key surfaces as an error from Generate.
// The model identifier is fixed per Model (DefaultModel unless Config.Model is set).
// ParseResponse converts *genai.GenerateContentResponse into the canonical contentgen.Response,
// keeping nil entries so that the extraction step reports them as malformed.
package gemini
