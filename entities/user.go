package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`

	Recipes   []*Recipe   `gorm:"foreignKey:UserID"`
	MealPlans []*MealPlan `gorm:"foreignKey:UserID"`
	Favorites []*Favorite `gorm:"foreignKey:UserID"`
	Timestamp
}
