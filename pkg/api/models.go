package api

import (
	"time"

	"github.com/google/uuid"
)

type SummarizeRequest struct {
	CaseText string `json:"caseText"`
	// FileName is set by clients when the text was extracted from an upload.
	FileName string `json:"fileName,omitempty"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type AnalyzeContractRequest struct {
	ContractText string `json:"contractText"`
	FileName     string `json:"fileName,omitempty"`
}

type AnalyzeContractResponse struct {
	Analysis string `json:"analysis"`
}

type RecommendSectionsRequest struct {
	CaseText string `json:"caseText"`
	FileName string `json:"fileName,omitempty"`
}

type RecommendSectionsResponse struct {
	Sections string `json:"sections"`
}

type UploadResponse struct {
	Success       bool   `json:"success"`
	ExtractedText string `json:"extractedText"`
	FileName      string `json:"fileName"`
	FileSize      int64  `json:"fileSize"`
}

type HistoryQuery struct {
	Page int `schema:"page"`
}

type Interaction struct {
	Id             uuid.UUID `json:"id"`
	Kind           string    `json:"kind"`
	InputText      string    `json:"inputText"`
	AIResponse     string    `json:"aiResponse"`
	SourceFileName string    `json:"sourceFileName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type DeleteInteractionResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
