package models

import "gorm.io/datatypes"

type MediaFile struct {
	BaseModel

	Key      string `json:"key" gorm:"uniqueIndex"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeBytes"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`

	// Storage keys per variant name (original, xs, sm, md, lg).
	VariantKeys datatypes.JSONMap `json:"variantKeys"`
}
