package people

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"journal-scribe/editorial-portal/editorial-portal-backend/pkg/roles"
)

var (
	ErrBadEmail = errors.New("email does not follow the required format")
	ErrBadName  = errors.New("name is too short")
	ErrBadRole  = errors.New("unknown role code")
)

type CreateRequest struct {
	Email       string   `json:"email" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Affiliation string   `json:"affiliation"`
	Roles       []string `json:"roles"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Affiliation *string `json:"affiliation"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Person, error)
	Read(ctx context.Context) (map[string]Person, error)
	ReadOne(ctx context.Context, email string) (*Person, error)
	Update(ctx context.Context, email string, req UpdateRequest) (*Person, error)
	Delete(ctx context.Context, email string) error

	AddRole(ctx context.Context, email, role string) (*Person, error)
	RemoveRole(ctx context.Context, email, role string) (*Person, error)
	RolesOf(ctx context.Context, email string) ([]string, error)

	Masthead(ctx context.Context) (map[string][]Person, error)
}

type personService struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &personService{repo: repo, logger: logger}
}

func validate(email, name string, roleCodes []string) error {
	if !IsValidEmail(email) {
		return fmt.Errorf("%w: %s", ErrBadEmail, email)
	}
	if len(name) < MinNameLen {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	for _, code := range roleCodes {
		if !roles.IsValid(code) {
			return fmt.Errorf("%w: %s", ErrBadRole, code)
		}
	}
	return nil
}

func (s *personService) Create(ctx context.Context, req CreateRequest) (*Person, error) {
	if err := validate(req.Email, req.Name, req.Roles); err != nil {
		return nil, err
	}
	p := &Person{
		Email:       req.Email,
		Name:        req.Name,
		Affiliation: req.Affiliation,
		Roles:       req.Roles,
	}
	if p.Roles == nil {
		p.Roles = []string{}
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("person created", zap.String("email", p.Email))
	return p, nil
}

// Read returns every person keyed on email.
func (s *personService) Read(ctx context.Context) (map[string]Person, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Person, len(persons))
	for _, p := range persons {
		out[p.Email] = p
	}
	return out, nil
}

func (s *personService) ReadOne(ctx context.Context, email string) (*Person, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *personService) Update(ctx context.Context, email string, req UpdateRequest) (*Person, error) {
	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if len(*req.Name) < MinNameLen {
			return nil, fmt.Errorf("%w: %q", ErrBadName, *req.Name)
		}
		p.Name = *req.Name
	}
	if req.Affiliation != nil {
		p.Affiliation = *req.Affiliation
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *personService) Delete(ctx context.Context, email string) error {
	if err := s.repo.Delete(ctx, email); err != nil {
		return err
	}
	s.logger.Info("person deleted", zap.String("email", email))
	return nil
}

func (s *personService) AddRole(ctx context.Context, email, role string) (*Person, error) {
	if !roles.IsValid(role) {
		return nil, fmt.Errorf("%w: %s", ErrBadRole, role)
	}
	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !p.HasRole(role) {
		p.Roles = append(p.Roles, role)
		if err := s.repo.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *personService) RemoveRole(ctx context.Context, email, role string) (*Person, error) {
	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	kept := p.Roles[:0]
	for _, r := range p.Roles {
		if r != role {
			kept = append(kept, r)
		}
	}
	p.Roles = kept
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RolesOf resolves the role codes held by the person with this email.
// Satisfies the manuscripts.PersonDirectory contract.
func (s *personService) RolesOf(ctx context.Context, email string) ([]string, error) {
	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return p.Roles, nil
}

// Masthead groups people under the display name of each masthead role
// they hold.
func (s *personService) Masthead(ctx context.Context) (map[string][]Person, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	masthead := map[string][]Person{}
	for code, name := range roles.GetMastheadRoles() {
		members := []Person{}
		for _, p := range persons {
			if p.HasRole(code) {
				members = append(members, p)
			}
		}
		masthead[name] = members
	}
	return masthead, nil
}
