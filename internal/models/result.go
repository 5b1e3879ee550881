package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
}

type AnalyzeRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	JobDescription   string `json:"job_description" validate:"required"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Result       *AnalysisData `json:"result,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`
}

type AnalysisData struct {
	MatchScore       float64 `json:"match_score"`
	Suggestions      string  `json:"suggestions,omitempty"`
	SuggestionsError string  `json:"suggestions_error,omitempty"`
	Rewrite          string  `json:"rewrite,omitempty"`
	RewriteError     string  `json:"rewrite_error,omitempty"`
	Downloadable     bool    `json:"downloadable"`
}
