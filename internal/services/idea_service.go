package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/morisawa/ideapool/internal/models"
	"github.com/morisawa/ideapool/internal/repository"
	"github.com/morisawa/ideapool/internal/validation"
	"gorm.io/gorm"
)

var ErrIdeaNotFound = errors.New("idea does not exist")

// IdeaService handles idea business logic.
type IdeaService struct {
	ideaRepo repository.IdeaRepository
}

// NewIdeaService creates a new IdeaService.
func NewIdeaService(ideaRepo repository.IdeaRepository) *IdeaService {
	return &IdeaService{
		ideaRepo: ideaRepo,
	}
}

// IdeaInput represents the mutable fields of an idea.
type IdeaInput struct {
	Content    string
	Impact     int
	Ease       int
	Confidence int
}

func (in *IdeaInput) validate() error {
	if _, err := validation.Content(in.Content); err != nil {
		return err
	}
	if _, err := validation.Score(in.Impact); err != nil {
		return err
	}
	if _, err := validation.Score(in.Ease); err != nil {
		return err
	}
	if _, err := validation.Score(in.Confidence); err != nil {
		return err
	}
	return nil
}

// Create validates the input and stores a new idea for owner, returning it
// with the computed average score.
func (s *IdeaService) Create(owner string, input IdeaInput) (*models.Idea, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	idea := &models.Idea{
		CreatedBy:    owner,
		Content:      input.Content,
		Impact:       input.Impact,
		Ease:         input.Ease,
		Confidence:   input.Confidence,
		CreationTime: time.Now().Unix(),
	}

	if err := s.ideaRepo.Create(idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	// Re-fetch so the response carries the computed score.
	created, err := s.ideaRepo.FindByID(idea.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch new idea: %w", err)
	}
	return created, nil
}

// List returns one page of owner's ideas ranked by descending average
// score. page is zero-based.
func (s *IdeaService) List(owner string, page int) ([]models.Idea, error) {
	ideas, err := s.ideaRepo.ListByOwner(owner, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

// Update validates the input and mutates the idea only if it is owned by
// owner. An idea that is missing or owned by someone else reports
// ErrIdeaNotFound either way.
func (s *IdeaService) Update(id uint64, owner string, input IdeaInput) (*models.Idea, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	affected, err := s.ideaRepo.Update(id, owner, input.Content, input.Impact, input.Ease, input.Confidence)
	if err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	if affected == 0 {
		return nil, ErrIdeaNotFound
	}

	updated, err := s.ideaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to fetch updated idea: %w", err)
	}
	return updated, nil
}

// Delete removes the idea only if it is owned by owner.
func (s *IdeaService) Delete(id uint64, owner string) error {
	affected, err := s.ideaRepo.Delete(id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	if affected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}
