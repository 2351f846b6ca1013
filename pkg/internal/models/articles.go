package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ArticleTypeRecipe  = "recipe"
	ArticleTypeRoundup = "roundup"
	ArticleTypePost    = "post"
)

type Article struct {
	BaseModel

	Slug             string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Type             string `json:"type"`
	Headline         string `json:"headline"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	Language         string `json:"language"`

	IsOnline    bool       `json:"isOnline"`
	IsFavorite  bool       `json:"isFavorite"`
	PublishedAt *time.Time `json:"publishedAt"`

	ViewCount int64 `json:"viewCount"`

	// Codec-owned columns, stored as raw JSON text.
	ImagesJSON string `json:"imagesJson" gorm:"type:text"`
	RecipeJSON string `json:"recipeJson" gorm:"type:text"`

	// Denormalized snapshots, refreshed by the sync sweep.
	CachedCardJSON     datatypes.JSONMap `json:"cachedCardJson"`
	CachedAuthorJSON   datatypes.JSONMap `json:"cachedAuthorJson"`
	CachedCategoryJSON datatypes.JSONMap `json:"cachedCategoryJson"`

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
	AuthorID   *uint     `json:"authorId"`
	Author     *Author   `json:"author,omitempty"`

	Tags []Tag `json:"tags" gorm:"many2many:article_tags"`
}

type ArticleView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ArticleID uint      `json:"articleId" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
}
