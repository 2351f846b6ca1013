package models

import "gorm.io/gorm"

type Author struct {
	BaseModel

	Slug             string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	JobTitle         string `json:"jobTitle"`
	ShortDescription string `json:"shortDescription"`

	IsOnline bool `json:"isOnline"`

	ImagesJSON string `json:"imagesJson" gorm:"type:text"`
	BioJSON    string `json:"bioJson" gorm:"type:text"`
	SeoJSON    string `json:"seoJson" gorm:"type:text"`

	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`

	DeletedAt gorm.DeletedAt `json:"deletedAt" gorm:"index"`
}
