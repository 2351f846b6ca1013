package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/bildev/tastebook/pkg/internal/cache"
	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/models"
)

func categoryCacheKey(id uint) string {
	return fmt.Sprintf("category#%d", id)
}

func ListCategories(take int, offset int, onlineOnly bool) ([]models.Category, error) {
	tx := database.C.Order("sort_order ASC, id ASC")
	if onlineOnly {
		tx = tx.Where("is_online = ?", true)
	}

	var categories []models.Category
	err := tx.Offset(offset).Limit(take).Find(&categories).Error

	return categories, err
}

// CategoryTree returns root categories with their children nested below them.
func CategoryTree(onlineOnly bool) ([]*models.Category, error) {
	tx := database.C.Order("sort_order ASC, id ASC")
	if onlineOnly {
		tx = tx.Where("is_online = ?", true)
	}

	var categories []*models.Category
	if err := tx.Find(&categories).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	var roots []*models.Category
	for _, category := range categories {
		if category.ParentID != nil {
			if parent, ok := byID[*category.ParentID]; ok {
				parent.Children = append(parent.Children, category)
				continue
			}
		}
		roots = append(roots, category)
	}
	return roots, nil
}

// GetCategory resolves a slug-or-numeric-id path parameter.
func GetCategory(slugOrID string) (models.Category, error) {
	if id, err := strconv.Atoi(slugOrID); err == nil {
		return GetCategoryByID(uint(id))
	}

	var category models.Category
	if err := database.C.Where("slug = ?", slugOrID).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func GetCategoryByID(id uint) (models.Category, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, categoryCacheKey(id), new(models.Category)); err == nil {
		return *hit.(*models.Category), nil
	}

	var category models.Category
	if err := database.C.Where("id = ?", id).First(&category).Error; err != nil {
		return category, err
	}

	_ = marshal.Set(ctx, categoryCacheKey(id), category, store.WithCost(1))
	return category, nil
}

func invalidateCategoryCache(id uint) {
	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Delete(context.Background(), categoryCacheKey(id))
}

// ResolveCategoryDepth computes the server-owned depth field: zero for a
// root, parent depth plus one otherwise.
func ResolveCategoryDepth(parentID *uint) (int, error) {
	if parentID == nil {
		return 0, nil
	}
	parent, err := GetCategoryByID(*parentID)
	if err != nil {
		return 0, fmt.Errorf("unable to resolve parent category: %v", err)
	}
	return parent.Depth + 1, nil
}

func NewCategory(payload map[string]any) (models.Category, error) {
	var category models.Category
	if err := applyPayload(payload, &category); err != nil {
		return category, err
	}

	depth, err := ResolveCategoryDepth(category.ParentID)
	if err != nil {
		return category, err
	}
	category.Depth = depth

	err = database.C.Create(&category).Error
	return category, err
}

func EditCategory(category models.Category, payload map[string]any) (models.Category, error) {
	prevParent := category.ParentID

	if err := applyPayload(payload, &category); err != nil {
		return category, err
	}

	parentChanged := !uintPtrEqual(prevParent, category.ParentID)
	if parentChanged && category.ParentID != nil {
		cycle, err := detectParentCycle(category.ID, category.ParentID, GetCategoryByID)
		if err != nil {
			return category, err
		}
		if cycle {
			return category, fmt.Errorf("a category cannot be moved below itself or its own descendants")
		}
	}
	if parentChanged {
		depth, err := ResolveCategoryDepth(category.ParentID)
		if err != nil {
			return category, err
		}
		category.Depth = depth
	}

	if err := database.C.Save(&category).Error; err != nil {
		return category, err
	}
	invalidateCategoryCache(category.ID)

	if parentChanged {
		if err := syncSubtreeDepth(category); err != nil {
			return category, err
		}
	}
	return category, nil
}

// detectParentCycle walks the ancestor chain of a prospective parent and
// reports whether it passes through the category itself, which would turn the
// tree into a cycle.
func detectParentCycle(id uint, parentID *uint, lookup func(uint) (models.Category, error)) (bool, error) {
	seen := map[uint]bool{}
	for parentID != nil {
		if *parentID == id || seen[*parentID] {
			return true, nil
		}
		seen[*parentID] = true

		parent, err := lookup(*parentID)
		if err != nil {
			return false, err
		}
		parentID = parent.ParentID
	}
	return false, nil
}

// syncSubtreeDepth rewrites the depth of every descendant after a category
// moved below a new parent.
func syncSubtreeDepth(parent models.Category) error {
	var children []models.Category
	if err := database.C.Where("parent_id = ?", parent.ID).Find(&children).Error; err != nil {
		return err
	}
	for _, child := range children {
		child.Depth = parent.Depth + 1
		if err := database.C.Save(&child).Error; err != nil {
			return err
		}
		invalidateCategoryCache(child.ID)
		if err := syncSubtreeDepth(child); err != nil {
			return err
		}
	}
	return nil
}

func DeleteCategory(category models.Category) error {
	if err := database.C.Delete(&category).Error; err != nil {
		return err
	}
	invalidateCategoryCache(category.ID)
	return nil
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
