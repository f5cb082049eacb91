package usecase

import (
	"context"
	"testing"

	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	uc := NewCategoryUC(newStubCategoryRepo(), testLogger{})

	category, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{Name: " Succulents "})
	require.NoError(t, err)
	assert.Equal(t, "Succulents", category.Name)
	assert.NotZero(t, category.ID)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	uc := NewCategoryUC(newStubCategoryRepo(), testLogger{})

	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{Name: "   "})
	assert.ErrorIs(t, err, e.ErrCategoryNameRequired)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.add("Succulents")

	uc := NewCategoryUC(repo, testLogger{})

	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{Name: "Succulents"})
	assert.ErrorIs(t, err, e.ErrCategoryExists)
}

func TestUpdateCategory(t *testing.T) {
	repo := newStubCategoryRepo()
	cat := repo.add("Succulents")

	uc := NewCategoryUC(repo, testLogger{})

	newName := "Cacti"
	updated, err := uc.UpdateCategory(context.Background(), cat.ID, &UpdateCategoryReq{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Cacti", updated.Name)

	empty := "  "
	_, err = uc.UpdateCategory(context.Background(), cat.ID, &UpdateCategoryReq{Name: &empty})
	assert.ErrorIs(t, err, e.ErrCategoryNameRequired)
}

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	repo := newStubCategoryRepo()
	cat := repo.add("Succulents")
	repo.inUse[cat.ID] = true

	uc := NewCategoryUC(repo, testLogger{})

	err := uc.DeleteCategory(context.Background(), cat.ID)
	assert.ErrorIs(t, err, e.ErrCategoryInUse)

	// Категория осталась на месте
	_, err = repo.GetByID(context.Background(), cat.ID)
	assert.NoError(t, err)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	uc := NewCategoryUC(newStubCategoryRepo(), testLogger{})

	err := uc.DeleteCategory(context.Background(), 42)
	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
}
