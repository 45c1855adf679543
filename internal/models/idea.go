package models

type Idea struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	CreatedBy    string `gorm:"type:varchar(255);index;not null" json:"-"`
	Content      string `gorm:"type:varchar(255);not null" json:"content"`
	Impact       int    `gorm:"not null" json:"impact"`
	Ease         int    `gorm:"not null" json:"ease"`
	Confidence   int    `gorm:"not null" json:"confidence"`
	CreationTime int64  `gorm:"not null" json:"created_at"`

	// AverageScore is computed by the SELECT, never stored.
	AverageScore float64 `gorm:"->;-:migration" json:"average_score"`
}
