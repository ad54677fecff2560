package services

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/validation"
)

// MultipartEncoder builds a multipart payload from text fields and one file.
type MultipartEncoder func(fields map[string]string, fileField, filename string, file io.Reader) (ports.MultipartBody, error)

// PerformanceService manages programs, their assets and competitions.
type PerformanceService struct {
	gw     ports.Gateway
	encode MultipartEncoder
}

func NewPerformanceService(gw ports.Gateway, encode MultipartEncoder) *PerformanceService {
	return &PerformanceService{gw: gw, encode: encode}
}

func (s *PerformanceService) ListPrograms(ctx context.Context, token string, skaterID int64) ([]domain.Program, error) {
	path, err := entityPath(domain.KindSkater, skaterID, "programs/")
	if err != nil {
		return nil, err
	}
	return call[[]domain.Program](ctx, s.gw, path, http.MethodGet, nil, token)
}

func (s *PerformanceService) CreateProgram(ctx context.Context, token string, kind domain.EntityKind, id int64, program domain.Program) (*domain.Program, error) {
	path, err := entityPath(kind, id, "programs/")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(program)
	if err != nil {
		return nil, err
	}
	return call[*domain.Program](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *PerformanceService) UpdateProgram(ctx context.Context, token string, programID int64, program domain.Program) (*domain.Program, error) {
	path, err := idPath("programs", programID, "")
	if err != nil {
		return nil, err
	}
	body, err := jsonBody(program)
	if err != nil {
		return nil, err
	}
	return call[*domain.Program](ctx, s.gw, path, http.MethodPatch, body, token)
}

// UploadProgramAsset attaches a file (PDF layout, video, image) to a program.
func (s *PerformanceService) UploadProgramAsset(ctx context.Context, token string, programID int64, assetType, filename string, file io.Reader) (*domain.ProgramAsset, error) {
	path, err := idPath("programs", programID, "assets/")
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateNonEmptyString(filename, "filename"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(assetType) == "" {
		assetType = "OTHER"
	}
	body, err := s.encode(map[string]string{"asset_type": assetType}, "file", filename, file)
	if err != nil {
		return nil, err
	}
	return call[*domain.ProgramAsset](ctx, s.gw, path, http.MethodPost, body, token)
}

func (s *PerformanceService) DeleteAsset(ctx context.Context, token string, assetID int64) error {
	path, err := idPath("assets", assetID, "")
	if err != nil {
		return err
	}
	return send(ctx, s.gw, path, http.MethodDelete, nil, token)
}

func (s *PerformanceService) SearchCompetitions(ctx context.Context, token, query string) ([]domain.Competition, error) {
	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("search", q)
	}
	return call[[]domain.Competition](ctx, s.gw, withQuery("/competitions/", params), http.MethodGet, nil, token)
}

func (s *PerformanceService) CreateCompetition(ctx context.Context, token string, c domain.Competition) (*domain.Competition, error) {
	body, err := jsonBody(c)
	if err != nil {
		return nil, err
	}
	return call[*domain.Competition](ctx, s.gw, "/competitions/", http.MethodPost, body, token)
}
