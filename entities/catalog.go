package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"size:200;index" json:"name"`
	MeasurementUnit string    `gorm:"size:200" json:"measurement_unit"`

	Timestamp
}

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"uniqueIndex;size:200" json:"name"`
	Color string    `gorm:"size:7" json:"color"`
	Slug  string    `gorm:"uniqueIndex;size:200" json:"slug"`

	Timestamp
}
