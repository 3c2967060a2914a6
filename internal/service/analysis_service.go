package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legal-assistant-be/internal/constant"
	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/pkg/requestctx"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/citation"
	"legal-assistant-be/pkg/llm"
)

const promptTitleLimit = 100

type IAnalysisService interface {
	// Analyze runs the full pipeline and records a history entry for owner.
	Analyze(ctx context.Context, owner *entity.User, text string) (*dto.AnalysisResponse, error)

	// AnalyzeText runs the model call and parse phases only, with no
	// persistence. This is the batch path.
	AnalyzeText(ctx context.Context, text string) (*citation.Analysis, error)
}

type analysisService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.Provider
	log        logger.ILogger
}

func NewAnalysisService(uowFactory unitofwork.RepositoryFactory, provider llm.Provider, log logger.ILogger) IAnalysisService {
	return &analysisService{
		uowFactory: uowFactory,
		provider:   provider,
		log:        log,
	}
}

func (s *analysisService) AnalyzeText(ctx context.Context, text string) (*citation.Analysis, error) {
	prompt := constant.BuildAnalysisPrompt(text)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	if strings.TrimSpace(raw) == "" {
		return nil, &UpstreamError{Err: fmt.Errorf("empty response from the AI service")}
	}

	result := citation.Parse(raw)
	return &result, nil
}

func (s *analysisService) Analyze(ctx context.Context, owner *entity.User, text string) (*dto.AnalysisResponse, error) {
	result, err := s.AnalyzeText(ctx, text)
	if err != nil {
		return nil, err
	}

	// History is a best-effort side effect: a failed write is logged and
	// swallowed, the analysis response still goes out.
	s.recordHistory(ctx, owner, text, result)

	hyperlinks := make([]dto.HyperlinkDTO, 0, len(result.Hyperlinks))
	for _, h := range result.Hyperlinks {
		hyperlinks = append(hyperlinks, dto.HyperlinkDTO{CitationText: h.CitationText, URL: h.URL})
	}

	return &dto.AnalysisResponse{
		Summary:    result.Summary,
		Hyperlinks: hyperlinks,
	}, nil
}

func (s *analysisService) recordHistory(ctx context.Context, owner *entity.User, text string, result *citation.Analysis) {
	if s.uowFactory == nil {
		return
	}

	record := &entity.SearchHistory{
		PromptTitle: promptTitle(text),
		Summary:     result.Summary,
		Hyperlinks:  result.Hyperlinks,
		CreatedAt:   time.Now(),
		OwnerId:     owner.Id,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.HistoryRepository().Create(ctx, record); err != nil {
		s.log.Error("analysis", "failed to save history record", map[string]interface{}{
			"error":      err.Error(),
			"owner_id":   owner.Id,
			"request_id": requestctx.RequestID(ctx),
		})
	}
}

// promptTitle keeps the first 100 characters of the input plus an ellipsis
// marker.
func promptTitle(text string) string {
	runes := []rune(text)
	if len(runes) > promptTitleLimit {
		runes = runes[:promptTitleLimit]
	}
	return string(runes) + "..."
}
