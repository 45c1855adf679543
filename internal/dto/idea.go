package dto

import (
	"github.com/morisawa/ideapool/internal/models"
)

// IdeaDTO represents an idea in API responses
type IdeaDTO struct {
	ID           uint64  `json:"id"`
	Content      string  `json:"content"`
	Impact       int     `json:"impact"`
	Ease         int     `json:"ease"`
	Confidence   int     `json:"confidence"`
	CreatedAt    int64   `json:"created_at"`
	AverageScore float64 `json:"average_score"`
}

// ToIdeaDTO converts an Idea model to IdeaDTO
func ToIdeaDTO(idea models.Idea) IdeaDTO {
	return IdeaDTO{
		ID:           idea.ID,
		Content:      idea.Content,
		Impact:       idea.Impact,
		Ease:         idea.Ease,
		Confidence:   idea.Confidence,
		CreatedAt:    idea.CreationTime,
		AverageScore: idea.AverageScore,
	}
}

// ToIdeaDTOs converts a slice of ideas for list responses
func ToIdeaDTOs(ideas []models.Idea) []IdeaDTO {
	items := make([]IdeaDTO, len(ideas))
	for i, idea := range ideas {
		items[i] = ToIdeaDTO(idea)
	}
	return items
}
