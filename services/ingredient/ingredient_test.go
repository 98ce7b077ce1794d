package ingredient

import (
	"path/filepath"
	"testing"

	"mealtracker-go-api/database"
	"mealtracker-go-api/models"
	"mealtracker-go-api/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db")+"?_busy_timeout=5000")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestIngredientService_CreateAndGet(t *testing.T) {
	svc := NewIngredientService(openTestDB(t), nil)

	created, err := svc.Create(structs.IngredientParam{Name: "Tomato"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Tomato", created.Name)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Tomato", got.Name)
}

func TestIngredientService_CreateRequiresName(t *testing.T) {
	svc := NewIngredientService(openTestDB(t), nil)

	_, err := svc.Create(structs.IngredientParam{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))
}

func TestIngredientService_DuplicateNamesAllowed(t *testing.T) {
	svc := NewIngredientService(openTestDB(t), nil)

	_, err := svc.Create(structs.IngredientParam{Name: "Salt"})
	require.NoError(t, err)
	_, err = svc.Create(structs.IngredientParam{Name: "Salt"})
	require.NoError(t, err)

	entities, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, entities, 2)
}

func TestIngredientService_Update(t *testing.T) {
	svc := NewIngredientService(openTestDB(t), nil)

	created, err := svc.Create(structs.IngredientParam{Name: "Onion"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, structs.IngredientParam{Name: "Red Onion"})
	require.NoError(t, err)
	assert.Equal(t, "Red Onion", updated.Name)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Onion", got.Name)
}

func TestIngredientService_UpdateNotFound(t *testing.T) {
	svc := NewIngredientService(openTestDB(t), nil)

	_, err := svc.Update(99, structs.IngredientParam{Name: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, structs.ErrNotFound, structs.KindOf(err))
}

func TestIngredientService_DeleteNotFoundLeavesStoreUnchanged(t *testing.T) {
	db := openTestDB(t)
	svc := NewIngredientService(db, nil)

	_, err := svc.Create(structs.IngredientParam{Name: "Garlic"})
	require.NoError(t, err)

	err = svc.Delete(99)
	require.Error(t, err)
	assert.Equal(t, structs.ErrNotFound, structs.KindOf(err))

	var count int
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.Equal(t, 1, count)
}

func TestIngredientService_DeleteRestrictedWhenLinked(t *testing.T) {
	db := openTestDB(t)
	svc := NewIngredientService(db, nil)

	created, err := svc.Create(structs.IngredientParam{Name: "Basil"})
	require.NoError(t, err)

	dishEntity := models.Dish{Name: "Pesto"}
	require.NoError(t, db.Create(&dishEntity).Error)
	require.NoError(t, db.Create(&models.DishHasIngredient{DishID: dishEntity.ID, IngredientID: created.ID, Quantity: 2}).Error)

	err = svc.Delete(created.ID)
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))

	_, err = svc.Get(created.ID)
	assert.NoError(t, err)
}

func TestIngredientService_Delete(t *testing.T) {
	svc := NewIngredientService(openTestDB(t), nil)

	created, err := svc.Create(structs.IngredientParam{Name: "Chili"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	require.Error(t, err)
	assert.Equal(t, structs.ErrNotFound, structs.KindOf(err))
}
