package entities

import (
	"github.com/google/uuid"
	"time"
)

type MealPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"not null" json:"user_id"`
	RecipeID    uuid.UUID `gorm:"not null" json:"recipe_id"`
	PlannedDate time.Time `gorm:"type:date;not null" json:"planned_date"`
	MealType    string    `gorm:"not null" json:"meal_type"` // breakfast, lunch, dinner

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}
