package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
)

// ResultsService manages test attempts, competition results, score
// analytics and the element library.
type ResultsService struct {
	gw ports.Gateway
}

func NewResultsService(gw ports.Gateway) *ResultsService {
	return &ResultsService{gw: gw}
}

func (s *ResultsService) ListTests(ctx context.Context, token string, skaterID int64) ([]domain.SkaterTest, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "tests/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.SkaterTest](ctx, s.gw, path, http.MethodGet, nil, token)
}

// CreateTest records a test attempt. Type and status default to a planned
// skills test.
func (s *ResultsService) CreateTest(ctx context.Context, token string, skaterID int64, test domain.SkaterTest) (*domain.SkaterTest, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "tests/")
	if err != nil {
		return nil, err
	}
	if test.TestType == "" {
		test.TestType = "Skills"
	}
	if test.Status == "" {
		test.Status = domain.TestPlanned
	}
	body, err := jsonBody(test)
	if err != nil {
		return nil, err
	}
	return call[*domain.SkaterTest](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *ResultsService) UpdateTest(ctx context.Context, token string, testID int64, test domain.SkaterTest) (*domain.SkaterTest, error) {
	path, err := idPath("tests", testID, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(test)
	if err != nil {
		return nil, err
	}
	return call[*domain.SkaterTest](ctx, s.gw, path, http.MethodPatch, body, token)
}

func (s *ResultsService) DeleteTest(ctx context.Context, token string, testID int64) error {
	path, err := idPath("tests", testID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func (s *ResultsService) ListResults(ctx context.Context, token string, skaterID int64) ([]domain.CompetitionResult, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "results/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.CompetitionResult](ctx, s.gw, path, http.MethodGet, nil, token)
}

// CreateResult logs a competition entry. A result carrying a score or a
// placement is completed unless a status was given.
func (s *ResultsService) CreateResult(ctx context.Context, token string, skaterID int64, result domain.CompetitionResult) (*domain.CompetitionResult, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "results/")
	if err != nil {
		return nil, err
	}
	if result.Status == "" {
		result.Status = domain.ResultPlanned
		if result.TotalScore != "" || result.Placement != nil {
			result.Status = domain.ResultCompleted
		}
	}
	body, err := jsonBody(result)
	if err != nil {
		return nil, err
	}
	return call[*domain.CompetitionResult](ctx, s.gw, path, http.MethodPost, body, token)
}

// Stats returns personal and season bests plus the score history.
func (s *ResultsService) Stats(ctx context.Context, token string, skaterID int64) (*domain.SkaterStats, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "stats/")
	if err != nil {
		return nil, err
	}
	return call[*domain.SkaterStats](ctx, s.gw, path, http.MethodGet, nil, token)
}

// SearchElements queries the element library by name or abbreviation,
// optionally narrowed to one category.
func (s *ResultsService) SearchElements(ctx context.Context, token, query, category string) ([]domain.SkatingElement, error) {
	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("search", q)
	}
	if c := strings.TrimSpace(category); c != "" {
		params.Set("category", strings.ToUpper(c))
	}
	return call[[]domain.SkatingElement](ctx, s.gw, withQuery("/elements/", params), http.MethodGet, nil, token)
}
