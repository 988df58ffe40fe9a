package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"docsense/internal/extract"
	"docsense/internal/models"
	"docsense/internal/service"

	"github.com/bytedance/sonic"
)

type analyzeService interface {
	Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error)
	AnalyzeStream(ctx context.Context, req *models.AnalyzeRequest) (<-chan models.StreamChunk, error)
}

type AnalyzeHandler struct {
	service        analyzeService
	maxUploadBytes int64
}

func NewAnalyzeHandler(service analyzeService, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *AnalyzeHandler) parseForm(r *http.Request) (*models.AnalyzeRequest, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	req := &models.AnalyzeRequest{
		Prompt: r.FormValue("prompt"),
		APIKey: r.FormValue("api_key"),
		Model:  r.FormValue("model"),
		Scope:  r.FormValue("scope"),
	}

	file, header, err := r.FormFile("document")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		req.FileName = header.Filename
		req.Data = data
	case errors.Is(err, http.ErrMissingFile):
		// Validate reports the missing document.
	default:
		return nil, fmt.Errorf("read form file: %w", err)
	}
	return req, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingInput),
		errors.Is(err, service.ErrUnknownModel),
		errors.Is(err, service.ErrUnknownScope):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, service.ErrExtraction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// Analyze godoc
// @Summary Analyze an uploaded document
// @Description Extract text from a PDF/DOCX upload, substitute it into the prompt template and return the model's answer.
// @Tags analyze
// @Accept mpfd
// @Produce json
// @Param document formData file true "PDF or DOCX document"
// @Param prompt formData string false "Prompt template with a {document_text} placeholder"
// @Param api_key formData string true "GigaChat authorization key"
// @Param model formData string true "Model label: GigaChat-Lite, GigaChat-Pro or GigaChat-Max"
// @Param scope formData string true "API scope: GIGACHAT_API_PERS, GIGACHAT_API_CORP or GIGACHAT_API_B2B"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {string} string "missing or invalid input"
// @Failure 422 {string} string "unsupported format or unreadable document"
// @Failure 502 {string} string "remote API failure"
// @Router /api/analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		http.Error(w, fmt.Sprintf("analysis failed: %s", err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = sonic.ConfigDefault.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode: %s", err), http.StatusInternalServerError)
	}
}

// AnalyzeStream godoc
// @Summary Stream document analysis
// @Description Same input as /api/analyze, but the model's answer is streamed token by token over SSE.
// @Tags analyze
// @Accept mpfd
// @Produce text/event-stream
// @Param document formData file true "PDF or DOCX document"
// @Param prompt formData string false "Prompt template with a {document_text} placeholder"
// @Param api_key formData string true "GigaChat authorization key"
// @Param model formData string true "Model label: GigaChat-Lite, GigaChat-Pro or GigaChat-Max"
// @Param scope formData string true "API scope: GIGACHAT_API_PERS, GIGACHAT_API_CORP or GIGACHAT_API_B2B"
// @Success 200 {object} models.StreamChunk "Stream of tokens (SSE)"
// @Failure 400 {string} string "missing or invalid input"
// @Failure 422 {string} string "unsupported format or unreadable document"
// @Failure 502 {string} string "remote API failure"
// @Router /api/analyze/stream [post]
func (h *AnalyzeHandler) AnalyzeStream(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stream, err := h.service.AnalyzeStream(r.Context(), req)
	if err != nil {
		http.Error(w, fmt.Sprintf("analysis failed: %s", err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher := http.NewResponseController(w)

	for chunk := range stream {
		if chunk.Err != nil {
			fmt.Fprintf(w, "event: error\ndata: %v\n\n", chunk.Err)
			flusher.Flush()
			return
		}

		data, err := sonic.Marshal(chunk)
		if err != nil {
			fmt.Fprintf(w, "event: error\ndata: marshal error %v\n\n", err)
			flusher.Flush()
			return
		}

		fmt.Fprintf(w, "event: message\ndata: %s\n\n", data)
		flusher.Flush()

		if chunk.Done {
			fmt.Fprintf(w, "event: done\ndata: {}\n\n")
			flusher.Flush()
			return
		}
	}
}
