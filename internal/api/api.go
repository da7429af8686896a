package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"legalai-backend/internal/database"
	"legalai-backend/internal/extract"
	"legalai-backend/internal/llm"
	"legalai-backend/internal/prompt"
	"legalai-backend/pkg/api"
)

const maxUploadBytes = 32 << 20 // 32 MB

// LegalService orchestrates the text operations: validation, prompt
// construction, the gateway call, and persistence. It holds no per-request
// state.
type LegalService struct {
	db        *gorm.DB
	gateway   llm.Gateway
	uploadDir string
	devMode   bool
}

func NewLegalService(db *gorm.DB, gateway llm.Gateway, uploadDir string, devMode bool) *LegalService {
	return &LegalService{db: db, gateway: gateway, uploadDir: uploadDir, devMode: devMode}
}

func (s *LegalService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/summarize", RestHandler(s.Summarize))
	r.Post("/analyze-contract", RestHandler(s.AnalyzeContract))
	r.Post("/recommend-sections", RestHandler(s.RecommendSections))
	r.Post("/upload", RestHandler(s.Upload))
	r.Route("/history", func(r chi.Router) {
		r.Get("/", RestHandler(s.GetHistory))
		r.Delete("/{interaction_id}", RestHandler(s.DeleteInteraction))
	})
}

func (s *LegalService) Summarize(r *http.Request) (any, error) {
	req, err := ParseRequest[api.SummarizeRequest](r)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.CaseText) == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "case text is required")
	}

	summary, err := s.complete(r.Context(), database.KindSummary, req.CaseText, prompt.Summary(req.CaseText), req.FileName)
	if err != nil {
		return nil, err
	}

	return api.SummarizeResponse{Summary: summary}, nil
}

func (s *LegalService) AnalyzeContract(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AnalyzeContractRequest](r)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.ContractText) == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "contract text is required")
	}

	analysis, err := s.complete(r.Context(), database.KindContract, req.ContractText, prompt.Contract(req.ContractText), req.FileName)
	if err != nil {
		return nil, err
	}

	return api.AnalyzeContractResponse{Analysis: analysis}, nil
}

func (s *LegalService) RecommendSections(r *http.Request) (any, error) {
	req, err := ParseRequest[api.RecommendSectionsRequest](r)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.CaseText) == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "case description is required")
	}

	sections, err := s.complete(r.Context(), database.KindSections, req.CaseText, prompt.Sections(req.CaseText), req.FileName)
	if err != nil {
		return nil, err
	}

	return api.RecommendSectionsResponse{Sections: sections}, nil
}

// complete runs the gateway call for an already validated input and persists
// the resulting interaction. A gateway failure produces no record; a
// persistence failure discards the generated text from the response, so a
// stored record and a returned response always travel together.
func (s *LegalService) complete(ctx context.Context, kind, inputText, promptText, sourceFileName string) (string, error) {
	reply, err := s.gateway.Generate(ctx, promptText)
	if err != nil {
		slog.Error("ai gateway call failed", "kind", kind, "error", err)
		return "", CodedErrorf(http.StatusInternalServerError, "ai request failed")
	}

	metadata, err := json.Marshal(map[string]string{"model": s.gateway.ModelID()})
	if err != nil {
		return "", CodedErrorf(http.StatusInternalServerError, "could not marshal interaction metadata: %v", err)
	}

	interaction := &database.Interaction{
		Id:             uuid.New(),
		Kind:           kind,
		InputText:      inputText,
		AIResponse:     reply,
		SourceFileName: sql.NullString{String: sourceFileName, Valid: sourceFileName != ""},
		Metadata:       metadata,
		CreatedAt:      time.Now().UTC(),
	}

	if err := database.CreateInteraction(ctx, s.db, interaction); err != nil {
		slog.Error("error saving interaction, generated response dropped", "kind", kind, "response_len", len(reply), "error", err)
		return "", CodedErrorf(http.StatusInternalServerError, "failed to save interaction")
	}

	return reply, nil
}

func (s *LegalService) Upload(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "unable to parse multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "no file uploaded")
	}
	defer file.Close()

	tempPath, size, err := s.saveUpload(file)
	if err != nil {
		slog.Error("error saving uploaded file", "file", header.Filename, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to process file")
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			slog.Error("error removing uploaded temp file", "path", tempPath, "error", err)
		}
	}()

	data, err := os.ReadFile(tempPath)
	if err != nil {
		slog.Error("error reading uploaded temp file", "path", tempPath, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to process file")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	text, err := extract.Extract(data, ext)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return nil, CodedErrorf(http.StatusBadRequest, "unsupported file type: %s", ext)
		}
		slog.Error("file processing error", "file", header.Filename, "error", err)
		return nil, s.fileProcessingError(err)
	}

	return api.UploadResponse{
		Success:       true,
		ExtractedText: text,
		FileName:      header.Filename,
		FileSize:      size,
	}, nil
}

// saveUpload spools the multipart file to a temp file under the upload dir.
// The caller owns removal of the returned path.
func (s *LegalService) saveUpload(file io.Reader) (string, int64, error) {
	if err := os.MkdirAll(s.uploadDir, os.ModePerm); err != nil {
		return "", 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	temp, err := os.CreateTemp(s.uploadDir, "upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer temp.Close()

	size, err := io.Copy(temp, file)
	if err != nil {
		os.Remove(temp.Name())
		return "", 0, fmt.Errorf("failed to write temp file: %w", err)
	}

	return temp.Name(), size, nil
}

func (s *LegalService) fileProcessingError(err error) error {
	if s.devMode {
		return WithDetails(CodedErrorf(http.StatusInternalServerError, "failed to process file"), err.Error())
	}
	return CodedErrorf(http.StatusInternalServerError, "failed to process file")
}

func (s *LegalService) GetHistory(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.HistoryQuery](r)
	if err != nil {
		return nil, err
	}

	interactions, err := database.ListInteractions(r.Context(), s.db, params.Page)
	if err != nil {
		slog.Error("error listing interactions", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to fetch history")
	}

	return convertInteractions(interactions), nil
}

func (s *LegalService) DeleteInteraction(r *http.Request) (any, error) {
	id, err := URLParamUUID(r, "interaction_id")
	if err != nil {
		return nil, err
	}

	if err := database.DeleteInteraction(r.Context(), s.db, id); err != nil {
		slog.Error("error deleting interaction", "interaction_id", id, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to delete interaction")
	}

	return api.DeleteInteractionResponse{Success: true}, nil
}
