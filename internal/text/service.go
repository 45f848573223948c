package text

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/internal/security"
)

var ErrNotPermitted = errors.New("user may not edit journal text")

// RoleSource resolves a user's roles; the people service implements it.
type RoleSource interface {
	RolesOf(ctx context.Context, email string) ([]string, error)
}

type PageRequest struct {
	Title string `json:"title" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

type UpdateRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

type Service interface {
	Create(ctx context.Context, userEmail, key string, req PageRequest) (*Page, error)
	Read(ctx context.Context) (map[string]Page, error)
	ReadOne(ctx context.Context, key string) (*Page, error)
	Update(ctx context.Context, userEmail, key string, req UpdateRequest) (*Page, error)
	Delete(ctx context.Context, userEmail, key string) error
}

type textService struct {
	repo    Repository
	roleSrc RoleSource
	logger  *zap.Logger
}

func NewService(repo Repository, roleSrc RoleSource, logger *zap.Logger) Service {
	return &textService{repo: repo, roleSrc: roleSrc, logger: logger}
}

func (s *textService) permit(ctx context.Context, userEmail, action string) error {
	userRoles, err := s.roleSrc.RolesOf(ctx, userEmail)
	if err != nil {
		return err
	}
	if !security.IsPermitted(security.FeatureText, action, userRoles) {
		return fmt.Errorf("%w: %s", ErrNotPermitted, userEmail)
	}
	return nil
}

func (s *textService) Create(ctx context.Context, userEmail, key string, req PageRequest) (*Page, error) {
	if err := s.permit(ctx, userEmail, security.ActionCreate); err != nil {
		return nil, err
	}
	p := &Page{Key: key, Title: req.Title, Text: req.Text}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("page created", zap.String("key", key), zap.String("user", userEmail))
	return p, nil
}

// Read returns every page keyed on page key.
func (s *textService) Read(ctx context.Context) (map[string]Page, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Page, len(pages))
	for _, p := range pages {
		out[p.Key] = p
	}
	return out, nil
}

func (s *textService) ReadOne(ctx context.Context, key string) (*Page, error) {
	return s.repo.GetByKey(ctx, key)
}

func (s *textService) Update(ctx context.Context, userEmail, key string, req UpdateRequest) (*Page, error) {
	if err := s.permit(ctx, userEmail, security.ActionUpdate); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Text != nil {
		p.Text = *req.Text
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *textService) Delete(ctx context.Context, userEmail, key string) error {
	if err := s.permit(ctx, userEmail, security.ActionDelete); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	s.logger.Info("page deleted", zap.String("key", key), zap.String("user", userEmail))
	return nil
}
