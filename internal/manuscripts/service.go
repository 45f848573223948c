package manuscripts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotPermitted = errors.New("user may not perform this operation")
	ErrBadTarget    = errors.New("target state not allowed")
)

// PersonDirectory resolves a user's roles for authorization checks. The
// people service implements it.
type PersonDirectory interface {
	RolesOf(ctx context.Context, email string) ([]string, error)
}

type SubmitRequest struct {
	Title       string `json:"title" binding:"required"`
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"required"`
	Text        string `json:"text"`
	Abstract    string `json:"abstract"`
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Manuscript, error)
	Get(ctx context.Context, id uuid.UUID) (*Manuscript, error)
	List(ctx context.Context, state *State) ([]Manuscript, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ApplyAction(ctx context.Context, id uuid.UUID, userEmail string, action Action, referee string) (*Manuscript, error)
	MoveState(ctx context.Context, id uuid.UUID, userEmail string, target State) (*Manuscript, error)
	ValidActionsFor(ctx context.Context, id uuid.UUID, userEmail string) ([]Action, error)
	ValidStatesFor(ctx context.Context, id uuid.UUID, userEmail string) ([]State, error)
}

type manuscriptService struct {
	repo   Repository
	people PersonDirectory
	logger *zap.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewService(repo Repository, people PersonDirectory, logger *zap.Logger) Service {
	return &manuscriptService{
		repo:   repo,
		people: people,
		logger: logger,
		locks:  map[uuid.UUID]*sync.Mutex{},
	}
}

// lockFor serializes transitions per manuscript id. Two concurrent
// referee mutations against the same record would otherwise race on the
// referee list between load and save.
func (s *manuscriptService) lockFor(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *manuscriptService) Submit(ctx context.Context, req SubmitRequest) (*Manuscript, error) {
	now := time.Now()
	m := &Manuscript{
		ID:          uuid.New(),
		Title:       req.Title,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Referees:    []string{},
		State:       StateSubmitted,
		Text:        req.Text,
		Abstract:    req.Abstract,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("manuscript submitted",
		zap.String("id", m.ID.String()),
		zap.String("author", m.AuthorEmail))
	return m, nil
}

func (s *manuscriptService) Get(ctx context.Context, id uuid.UUID) (*Manuscript, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *manuscriptService) List(ctx context.Context, state *State) ([]Manuscript, error) {
	if state != nil {
		if !IsValidState(*state) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidState, *state)
		}
		return s.repo.ListByState(ctx, *state)
	}
	return s.repo.List(ctx)
}

func (s *manuscriptService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ApplyAction runs the load, authorize, transition, save cycle for one
// user-chosen action. The whole cycle holds the per-id lock.
func (s *manuscriptService) ApplyAction(ctx context.Context, id uuid.UUID, userEmail string, action Action, referee string) (*Manuscript, error) {
	if !IsValidAction(action) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}
	userRoles, err := s.people.RolesOf(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !containsAction(ValidActions(m, userEmail, userRoles), action) {
		return nil, fmt.Errorf("%w: %s may not %s in state %s", ErrNotPermitted, userEmail, action, m.State)
	}

	next, err := HandleAction(m.State, action, m, referee)
	if err != nil {
		return nil, err
	}
	m.State = next
	m.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("manuscript transitioned",
		zap.String("id", id.String()),
		zap.String("action", string(action)),
		zap.String("state", string(next)),
		zap.String("user", userEmail))
	return m, nil
}

// MoveState is the editor override: place the manuscript in an arbitrary
// state, bypassing the transition table.
func (s *manuscriptService) MoveState(ctx context.Context, id uuid.UUID, userEmail string, target State) (*Manuscript, error) {
	if !IsValidState(target) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, target)
	}
	userRoles, err := s.people.RolesOf(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMoveAction(m, userEmail, userRoles) {
		return nil, fmt.Errorf("%w: %s may not move manuscripts", ErrNotPermitted, userEmail)
	}
	if target == m.State || target == StateWithdrawn {
		return nil, fmt.Errorf("%w: %s", ErrBadTarget, target)
	}

	m.State = target
	m.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("manuscript moved",
		zap.String("id", id.String()),
		zap.String("state", string(target)),
		zap.String("user", userEmail))
	return m, nil
}

func (s *manuscriptService) ValidActionsFor(ctx context.Context, id uuid.UUID, userEmail string) ([]Action, error) {
	userRoles, err := s.people.RolesOf(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ValidActions(m, userEmail, userRoles), nil
}

func (s *manuscriptService) ValidStatesFor(ctx context.Context, id uuid.UUID, userEmail string) ([]State, error) {
	userRoles, err := s.people.RolesOf(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ValidStates(m, userEmail, userRoles), nil
}
