package services

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
	"github.com/bildev/tastebook/pkg/internal/storage"
)

// MediaStorage is the configured object storage backend; main wires it up
// before the server starts taking requests.
var MediaStorage storage.Driver

func ListMedia(take int, offset int) ([]models.MediaFile, error) {
	var files []models.MediaFile
	err := database.C.Order("created_at DESC").Offset(offset).Limit(take).Find(&files).Error
	return files, err
}

func GetMedia(id uint) (models.MediaFile, error) {
	var file models.MediaFile
	err := database.C.Where("id = ?", id).First(&file).Error
	return file, err
}

func UploadMedia(fileName string, mimeType string, data []byte, width, height int) (models.MediaFile, error) {
	var file models.MediaFile
	if MediaStorage == nil {
		return file, fmt.Errorf("media storage is not configured")
	}

	key := fmt.Sprintf("media/%s%s", uuid.NewString(), filepath.Ext(fileName))
	if err := MediaStorage.Put(key, data, mimeType); err != nil {
		return file, fmt.Errorf("unable to store media object: %v", err)
	}

	file = models.MediaFile{
		Key:      key,
		FileName: fileName,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Width:    width,
		Height:   height,
		VariantKeys: datatypes.JSONMap{
			"original": key,
		},
	}

	if err := database.C.Create(&file).Error; err != nil {
		// Row creation failed; the stored object would be orphaned otherwise.
		_ = MediaStorage.Delete(key)
		return file, err
	}
	return file, nil
}

// DeleteMedia removes the row and then every stored variant independently.
// One key failing to delete does not abort the others, and the row removal
// is not rolled back over a failed cleanup.
func DeleteMedia(file models.MediaFile) error {
	if err := database.C.Delete(&file).Error; err != nil {
		return err
	}

	if MediaStorage == nil {
		return nil
	}
	for variant, raw := range file.VariantKeys {
		key, ok := raw.(string)
		if !ok {
			continue
		}
		if err := MediaStorage.Delete(key); err != nil {
			log.Warn().Err(err).Str("variant", variant).Str("key", key).Msg("Unable to delete media object...")
		}
	}
	return nil
}
