package supportai

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// generateRequest тело запроса generateContent
type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

// generateResponse ответ generateContent (используются только кандидаты)
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}
