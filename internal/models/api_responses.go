package models

// ExampleQuestionsResponse lists the demo's suggested questions.
type ExampleQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// DocumentSummary describes one document of the demo catalog.
type DocumentSummary struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Bytes int    `json:"bytes"`
}

// DocumentsResponse lists the documents the demo claims to analyze.
type DocumentsResponse struct {
	Count     int               `json:"count"`
	Documents []DocumentSummary `json:"documents"`
}
