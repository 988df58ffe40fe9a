package service

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"docsense/internal/config"
	"docsense/internal/extract"
	"docsense/internal/gigachat"
	"docsense/internal/metrics"
	"docsense/internal/models"
	"docsense/internal/prompt"
	"docsense/internal/storage"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// AnalyzeService runs one document analysis: spool the upload, extract its
// text, substitute it into the prompt template and ask the remote model. The
// chat client is built per request because the credential arrives with the
// form.
type AnalyzeService struct {
	logger     zerolog.Logger
	cfg        config.GigaChatConfig
	store      *storage.Store
	tokens     *gigachat.TokenSource
	httpClient *http.Client
	cache      Cache
}

func NewAnalyzeService(logger zerolog.Logger, cfg config.GigaChatConfig, store *storage.Store) *AnalyzeService {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &AnalyzeService{
		logger:     logger,
		cfg:        cfg,
		store:      store,
		tokens:     gigachat.NewTokenSource(cfg.AuthURL, httpClient),
		httpClient: httpClient,
	}
}

func (s *AnalyzeService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// preparedRequest is the state left after the local half of an analysis: the
// temp file has already been written, read and removed.
type preparedRequest struct {
	modelID  string
	prompt   string
	cacheKey string
}

func (s *AnalyzeService) prepare(req *models.AnalyzeRequest) (*preparedRequest, error) {
	modelID, err := ResolveModel(req.Model)
	if err != nil {
		return nil, err
	}
	if err := ValidateScope(req.Scope); err != nil {
		return nil, err
	}

	path, err := s.store.Save(req.FileName, req.Data)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	defer func() {
		if err := s.store.Remove(path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("failed to remove upload")
		}
	}()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(req.FileName)), ".")
	start := time.Now()
	text, err := extract.Text(path)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.DocumentExtractTotal(status, format)
	metrics.DocumentExtractDuration(status, format, time.Since(start))

	if err != nil {
		s.logger.Error().Err(err).Str("file", req.FileName).Msg("extraction failed")
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	rendered := prompt.Render(req.Prompt, text)
	return &preparedRequest{
		modelID:  modelID,
		prompt:   rendered,
		cacheKey: getCacheKey(rendered, modelID, req.Scope),
	}, nil
}

func (s *AnalyzeService) chatClient(token string) openai.Client {
	return openai.NewClient(
		option.WithAPIKey(token),
		option.WithBaseURL(s.cfg.BaseURL),
		option.WithHTTPClient(s.httpClient),
	)
}

func (s *AnalyzeService) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, p.cacheKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("cache get error")
		}
		if found {
			s.logger.Info().Msg("served from cache")
			return &models.AnalyzeResponse{Result: cached}, nil
		}
	}

	token, err := s.tokens.Fetch(ctx, req.APIKey, req.Scope)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}

	client := s.chatClient(token)
	resp, err := client.Chat.Completions.New(ctx, *buildChatParams(p.modelID, p.prompt))
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	result := resp.Choices[0].Message.Content
	if s.cache != nil {
		if err := s.cache.Set(ctx, p.cacheKey, result); err != nil {
			s.logger.Warn().Err(err).Msg("failed to set cache")
		}
	}
	return &models.AnalyzeResponse{Result: result}, nil
}

func (s *AnalyzeService) AnalyzeStream(
	ctx context.Context,
	req *models.AnalyzeRequest,
) (<-chan models.StreamChunk, error) {
	p, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	ch := make(chan models.StreamChunk, 1)

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, p.cacheKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("cache get error")
		}
		if found {
			ch <- models.StreamChunk{Delta: cached, Done: true}
			close(ch)
			return ch, nil
		}
	}

	token, err := s.tokens.Fetch(ctx, req.APIKey, req.Scope)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}

	params := buildChatParams(p.modelID, p.prompt)
	client := s.chatClient(token)

	go func() {
		defer close(ch)

		sendOrStop := func(msg models.StreamChunk) bool {
			select {
			case ch <- msg:
				return true
			case <-ctx.Done():
				return false
			}
		}

		sendNonBlocking := func(msg models.StreamChunk) {
			select {
			case ch <- msg:
			default:
			}
		}

		stream := client.Chat.Completions.NewStreaming(ctx, *params)
		defer stream.Close()

		var builder strings.Builder

		for stream.Next() {
			if ctx.Err() != nil {
				sendNonBlocking(models.StreamChunk{Err: ctx.Err()})
				return
			}

			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}

			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}

			builder.WriteString(delta)
			if !sendOrStop(models.StreamChunk{Delta: delta}) {
				return
			}
		}

		if err := stream.Err(); err != nil {
			sendNonBlocking(models.StreamChunk{Err: err})
			return
		}

		if s.cache != nil {
			if err := s.cache.Set(ctx, p.cacheKey, builder.String()); err != nil {
				s.logger.Warn().Err(err).Msg("failed to set cache")
			}
		}

		sendNonBlocking(models.StreamChunk{Done: true})
	}()

	return ch, nil
}

// getCacheKey hashes the rendered prompt (which already embeds the document
// text) together with the model and scope. The credential is deliberately
// left out of the key.
func getCacheKey(renderedPrompt, modelID, scope string) string {
	hash := sha256.Sum256([]byte(strings.Join([]string{renderedPrompt, modelID, scope}, "-")))
	return hex.EncodeToString(hash[:])
}
