package gemini

// Wire types for the generateContent REST endpoint.
// Request: {"contents":[{"parts":[{"text":...}]}]}
// Response: {"candidates":[{"content":{"parts":[{"text":...}]}}]}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// firstText returns the first candidate's first text part, or false if the
// response does not contain that path.
func (r *generateResponse) firstText() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0].Text, true
}
