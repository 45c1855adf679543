package repository

import (
	"github.com/morisawa/ideapool/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. Duplicate emails fail with the storage
	// layer's unique-constraint error.
	Create(user *models.User) error

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// IdeaRepository defines the interface for idea data access
type IdeaRepository interface {
	// Create inserts a new idea and fills in its assigned ID
	Create(idea *models.Idea) error

	// FindByID fetches a single idea by id, including the computed
	// average score. Not owner-scoped: any caller holding a valid id can
	// read the idea. The HTTP layer never exposes this directly; it backs
	// the re-fetch after create/update.
	FindByID(id uint64) (*models.Idea, error)

	// ListByOwner returns one page of the owner's ideas ordered by
	// descending average score, ties broken by ascending id. page is
	// zero-based.
	ListByOwner(owner string, page int) ([]models.Idea, error)

	// Update mutates content and scores of the idea matching both id and
	// owner, and reports how many rows changed. creation_time and
	// created_by are never touched.
	Update(id uint64, owner, content string, impact, ease, confidence int) (int64, error)

	// Delete removes the idea matching both id and owner, and reports how
	// many rows were removed.
	Delete(id uint64, owner string) (int64, error)
}
