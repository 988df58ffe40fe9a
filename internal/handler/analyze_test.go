package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"docsense/internal/extract"
	"docsense/internal/models"
	"docsense/internal/service"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	resp   *models.AnalyzeResponse
	err    error
	chunks []models.StreamChunk
	calls  int
}

func (s *stubService) Analyze(_ context.Context, _ *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	s.calls++
	return s.resp, s.err
}

func (s *stubService) AnalyzeStream(_ context.Context, _ *models.AnalyzeRequest) (<-chan models.StreamChunk, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	ch := make(chan models.StreamChunk, len(s.chunks))
	for _, c := range s.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func multipartRequest(t *testing.T, target string, fields map[string]string, fileName string, fileData []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("document", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"prompt":  "Classify:\n{document_text}",
		"api_key": "auth-key",
		"model":   "GigaChat-Lite",
		"scope":   "GIGACHAT_API_PERS",
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	stub := &stubService{resp: &models.AnalyzeResponse{Result: "# Contract\nlooks fine"}}
	h := NewAnalyzeHandler(stub, 1<<20)

	rec := httptest.NewRecorder()
	h.Analyze(rec, multipartRequest(t, "/api/analyze", validFields(), "contract.docx", []byte("bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.AnalyzeResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "# Contract\nlooks fine", resp.Result)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeMissingDocument(t *testing.T) {
	stub := &stubService{}
	h := NewAnalyzeHandler(stub, 1<<20)

	rec := httptest.NewRecorder()
	h.Analyze(rec, multipartRequest(t, "/api/analyze", validFields(), "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.calls, "service must not run without a document")
}

func TestAnalyzeMissingAPIKey(t *testing.T) {
	stub := &stubService{}
	h := NewAnalyzeHandler(stub, 1<<20)

	fields := validFields()
	fields["api_key"] = ""

	rec := httptest.NewRecorder()
	h.Analyze(rec, multipartRequest(t, "/api/analyze", fields, "contract.docx", []byte("bytes")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.calls, "service must not run without a credential")
}

func TestAnalyzeErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown model", fmt.Errorf("%w: %q", service.ErrUnknownModel, "x"), http.StatusBadRequest},
		{"unknown scope", fmt.Errorf("%w: %q", service.ErrUnknownScope, "x"), http.StatusBadRequest},
		{"unsupported format", fmt.Errorf("%w: %q", extract.ErrUnsupportedFormat, ".txt"), http.StatusUnprocessableEntity},
		{"extraction failure", fmt.Errorf("%w: bad zip", service.ErrExtraction), http.StatusUnprocessableEntity},
		{"remote failure", errors.New("connection refused"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAnalyzeHandler(&stubService{err: tc.err}, 1<<20)

			rec := httptest.NewRecorder()
			h.Analyze(rec, multipartRequest(t, "/api/analyze", validFields(), "contract.docx", []byte("bytes")))

			assert.Equal(t, tc.want, rec.Code)
			assert.Contains(t, rec.Body.String(), "analysis failed")
		})
	}
}

func TestAnalyzeStream(t *testing.T) {
	stub := &stubService{chunks: []models.StreamChunk{
		{Delta: "the "},
		{Delta: "answer"},
		{Done: true},
	}}
	h := NewAnalyzeHandler(stub, 1<<20)

	rec := httptest.NewRecorder()
	h.AnalyzeStream(rec, multipartRequest(t, "/api/analyze/stream", validFields(), "contract.docx", []byte("bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `"delta":"the "`)
	assert.Contains(t, body, `"delta":"answer"`)
	assert.Contains(t, body, "event: done")
}

func TestAnalyzeStreamError(t *testing.T) {
	stub := &stubService{chunks: []models.StreamChunk{
		{Err: errors.New("model overloaded")},
	}}
	h := NewAnalyzeHandler(stub, 1<<20)

	rec := httptest.NewRecorder()
	h.AnalyzeStream(rec, multipartRequest(t, "/api/analyze/stream", validFields(), "contract.docx", []byte("bytes")))

	assert.Contains(t, rec.Body.String(), "event: error")
	assert.Contains(t, rec.Body.String(), "model overloaded")
}
