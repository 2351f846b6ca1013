package models

import "gorm.io/gorm"

type Tag struct {
	BaseModel

	Slug       string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	IsOnline   bool   `json:"isOnline"`
	IsFavorite bool   `json:"isFavorite"`

	Articles []Article `json:"articles,omitempty" gorm:"many2many:article_tags"`
}

type Category struct {
	BaseModel

	Slug             string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Label            string `json:"label"`
	ShortDescription string `json:"shortDescription"`

	// Depth is derived from the parent chain and never client-supplied.
	ParentID  *uint       `json:"parentId"`
	Parent    *Category   `json:"parent,omitempty"`
	Children  []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Depth     int         `json:"depth"`
	SortOrder int         `json:"sortOrder"`

	IsOnline bool `json:"isOnline"`

	ImagesJSON string `json:"imagesJson" gorm:"type:text"`
	SeoJSON    string `json:"seoJson" gorm:"type:text"`
	ConfigJSON string `json:"configJson" gorm:"type:text"`

	DeletedAt gorm.DeletedAt `json:"deletedAt" gorm:"index"`
}
