package entities

import (
	"github.com/google/uuid"
	"time"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"not null" json:"user_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	Ingredients     string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions    string    `gorm:"type:text;not null" json:"instructions"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	ImageURL        string    `json:"image_url,omitempty"`
	Category        string    `json:"category"`

	User      *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	MealPlans []*MealPlan `gorm:"foreignKey:RecipeID"`
	Favorites []*Favorite `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type Favorite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}
