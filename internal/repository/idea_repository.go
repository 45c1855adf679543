package repository

import (
	"github.com/morisawa/ideapool/internal/constants"
	"github.com/morisawa/ideapool/internal/database"
	"github.com/morisawa/ideapool/internal/models"
	"gorm.io/gorm"
)

// selectWithAverage computes the ranking score at read time.
const selectWithAverage = "ideas.*, (impact + ease + confidence) / 3.0 AS average_score"

// GormIdeaRepository is a GORM implementation of IdeaRepository
type GormIdeaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new IdeaRepository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &GormIdeaRepository{db: db}
}

// Create inserts a new idea
func (r *GormIdeaRepository) Create(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

// FindByID fetches an idea by id with its computed average score
func (r *GormIdeaRepository) FindByID(id uint64) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.Model(&models.Idea{}).
		Select(selectWithAverage).
		First(&idea, id).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// ListByOwner returns one page of ideas ranked by descending average score.
// Ties order by id ascending so pagination is deterministic.
func (r *GormIdeaRepository) ListByOwner(owner string, page int) ([]models.Idea, error) {
	var ideas []models.Idea
	err := r.db.Model(&models.Idea{}).
		Select(selectWithAverage).
		Where("created_by = ?", owner).
		Order("average_score DESC, id ASC").
		Scopes(database.Page(page, constants.IdeasPerPage)).
		Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// Update mutates content and scores for the idea owned by owner
func (r *GormIdeaRepository) Update(id uint64, owner, content string, impact, ease, confidence int) (int64, error) {
	tx := r.db.Model(&models.Idea{}).
		Where("id = ? AND created_by = ?", id, owner).
		Updates(map[string]interface{}{
			"content":    content,
			"impact":     impact,
			"ease":       ease,
			"confidence": confidence,
		})
	return tx.RowsAffected, tx.Error
}

// Delete removes the idea owned by owner
func (r *GormIdeaRepository) Delete(id uint64, owner string) (int64, error) {
	tx := r.db.Where("id = ? AND created_by = ?", id, owner).Delete(&models.Idea{})
	return tx.RowsAffected, tx.Error
}
