package contentgen

// Response is the canonical shape of a remote generation result.
// Only Candidates[0].Content.Parts[0].Text is consulted; everything else is ignored.
type Response struct {
	Candidates []*Candidate
}

// Candidate is one alternative completion for a single prompt.
type Candidate struct {
	Content *Content
}

// Content holds the ordered fragments of a candidate.
type Content struct {
	Parts []*Part
}

// Part is one fragment of content. Text is nil when the part carries no text.
type Part struct {
	Text *string
}

// TextPart returns a Part holding s.
func TextPart(s string) *Part {
	return &Part{Text: &s}
}

// NewTextResponse builds a single-candidate, single-part Response.
func NewTextResponse(text string) *Response {
	return &Response{Candidates: []*Candidate{{Content: &Content{Parts: []*Part{TextPart(text)}}}}}
}

// FirstText walks candidates[0].content.parts[0].text without panicking on absent steps.
// ok is false if any step is missing.
func (r *Response) FirstText() (text string, ok bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 {
		return "", false
	}
	p := c.Content.Parts[0]
	if p == nil || p.Text == nil {
		return "", false
	}
	return *p.Text, true
}

// ExtractText returns the first candidate's first text part.
// It returns ErrEmptyResponse when there are no candidates and ErrMalformedResponse when
// the text is missing anywhere along the path.
func ExtractText(resp *Response) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	text, ok := resp.FirstText()
	if !ok {
		return "", ErrMalformedResponse
	}
	return text, nil
}
