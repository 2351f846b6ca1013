package services

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bildev/tastebook/pkg/internal/models"
)

// treeLookup serves ancestor walks from an in-memory id→parentId map.
func treeLookup(tree map[uint]*uint) func(uint) (models.Category, error) {
	return func(id uint) (models.Category, error) {
		parent, ok := tree[id]
		if !ok {
			return models.Category{}, gorm.ErrRecordNotFound
		}
		return models.Category{
			BaseModel: models.BaseModel{ID: id},
			ParentID:  parent,
		}, nil
	}
}

func TestDetectParentCycle(t *testing.T) {
	// 1 sits under 2, 2 under 3, 3 is a root; 9 is a separate root.
	tree := map[uint]*uint{
		1: lo.ToPtr(uint(2)),
		2: lo.ToPtr(uint(3)),
		3: nil,
		9: nil,
	}

	// Moving 3 below 1 would close the loop 1 → 2 → 3 → 1.
	cycle, err := detectParentCycle(3, lo.ToPtr(uint(1)), treeLookup(tree))
	require.NoError(t, err)
	assert.True(t, cycle)

	// Self-parenting is the trivial cycle.
	cycle, err = detectParentCycle(1, lo.ToPtr(uint(1)), treeLookup(tree))
	require.NoError(t, err)
	assert.True(t, cycle)

	// An unrelated root is a legal parent.
	cycle, err = detectParentCycle(1, lo.ToPtr(uint(9)), treeLookup(tree))
	require.NoError(t, err)
	assert.False(t, cycle)

	// A missing ancestor surfaces as an error, not a verdict.
	_, err = detectParentCycle(1, lo.ToPtr(uint(42)), treeLookup(tree))
	assert.Error(t, err)
}
