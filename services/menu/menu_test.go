package menu

import (
	"path/filepath"
	"testing"
	"time"

	"mealtracker-go-api/database"
	"mealtracker-go-api/enums"
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

func seedDish(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	entity := models.Dish{Name: name}
	require.NoError(t, db.Create(&entity).Error)
	return entity.ID
}

func backdate(t *testing.T, db *gorm.DB, menuItemID int64, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Exec("update menu_items set created_at = ? where menu_item_id = ?", createdAt, menuItemID).Error)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	start, err := PeriodStart(now, "")
	require.NoError(t, err)
	assert.Nil(t, start)

	start, err = PeriodStart(now, enums.PeriodLastWeek)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), *start)

	start, err = PeriodStart(now, enums.PeriodLastMonth)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -1, 0), *start)

	start, err = PeriodStart(now, enums.PeriodLastQuarter)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -3, 0), *start)

	_, err = PeriodStart(now, "yesterday")
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))
}

func TestMenuService_CreateResolvesDishChain(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	dishID := seedDish(t, db, "Curry")

	ingredientEntity := models.Ingredient{Name: "Cumin"}
	require.NoError(t, db.Create(&ingredientEntity).Error)
	require.NoError(t, db.Create(&models.DishHasIngredient{DishID: dishID, IngredientID: ingredientEntity.ID, Quantity: 2}).Error)

	created, err := svc.Create(structs.MenuItemParam{
		DishID:    dishID,
		Quantity:  2,
		Label:     enums.LabelDinner,
		DayOfWeek: enums.Friday,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.Quantity)
	assert.Equal(t, "Curry", created.Dish.Name)
	require.Len(t, created.Dish.Ingredients, 1)
	assert.Equal(t, "Cumin", created.Dish.Ingredients[0].Ingredient.Name)
}

func TestMenuService_CreateValidatesDishReference(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)

	_, err := svc.Create(structs.MenuItemParam{
		DishID:    77,
		Quantity:  1,
		Label:     enums.LabelLunch,
		DayOfWeek: enums.Monday,
	})
	require.Error(t, err)
	assert.Equal(t, structs.ErrInvalidReference, structs.KindOf(err))

	var count int
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMenuService_CreateRejectsUnknownEnums(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	dishID := seedDish(t, db, "Soup")

	_, err := svc.Create(structs.MenuItemParam{DishID: dishID, Label: "Brunch", DayOfWeek: enums.Monday})
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))

	_, err = svc.Create(structs.MenuItemParam{DishID: dishID, Label: enums.LabelLunch, DayOfWeek: "Someday"})
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))
}

func TestMenuService_CreateDefaultsQuantity(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	dishID := seedDish(t, db, "Toast")

	created, err := svc.Create(structs.MenuItemParam{
		DishID:    dishID,
		Label:     enums.LabelBreakfast,
		DayOfWeek: enums.Sunday,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Quantity)
}

func TestMenuService_ListPeriodFilter(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }
	dishID := seedDish(t, db, "Stew")

	recent, err := svc.Create(structs.MenuItemParam{DishID: dishID, Label: enums.LabelDinner, DayOfWeek: enums.Monday})
	require.NoError(t, err)
	backdate(t, db, recent.ID, now.AddDate(0, 0, -3))

	stale, err := svc.Create(structs.MenuItemParam{DishID: dishID, Label: enums.LabelDinner, DayOfWeek: enums.Tuesday})
	require.NoError(t, err)
	backdate(t, db, stale.ID, now.AddDate(0, 0, -10))

	items, err := svc.List(enums.PeriodLastWeek)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, recent.ID, items[0].ID)
	assert.Equal(t, "Stew", items[0].Dish.Name)

	items, err = svc.List("")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.List("forever")
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))
}

func TestMenuService_UpdatePatchesOnlyProvidedFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	dishID := seedDish(t, db, "Salad")

	created, err := svc.Create(structs.MenuItemParam{
		DishID:    dishID,
		Quantity:  2,
		Label:     enums.LabelLunch,
		DayOfWeek: enums.Wednesday,
	})
	require.NoError(t, err)

	quantity := 5
	updated, err := svc.Update(created.ID, structs.MenuItemPatchParam{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, enums.LabelLunch, updated.Label)
	assert.Equal(t, enums.Wednesday, updated.DayOfWeek)
	assert.Equal(t, dishID, updated.DishID)
}

func TestMenuService_UpdateValidatesPatchedFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	dishID := seedDish(t, db, "Pizza")

	created, err := svc.Create(structs.MenuItemParam{
		DishID:    dishID,
		Label:     enums.LabelDinner,
		DayOfWeek: enums.Saturday,
	})
	require.NoError(t, err)

	badDish := int64(404)
	_, err = svc.Update(created.ID, structs.MenuItemPatchParam{DishID: &badDish})
	require.Error(t, err)
	assert.Equal(t, structs.ErrInvalidReference, structs.KindOf(err))

	badLabel := "Snack"
	_, err = svc.Update(created.ID, structs.MenuItemPatchParam{Label: &badLabel})
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))

	badQuantity := 0
	_, err = svc.Update(created.ID, structs.MenuItemPatchParam{Quantity: &badQuantity})
	require.Error(t, err)
	assert.Equal(t, structs.ErrValidation, structs.KindOf(err))
}

func TestMenuService_DeleteNotFoundLeavesStoreUnchanged(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(db, nil)
	dishID := seedDish(t, db, "Taco")

	created, err := svc.Create(structs.MenuItemParam{
		DishID:    dishID,
		Label:     enums.LabelDinner,
		DayOfWeek: enums.Thursday,
	})
	require.NoError(t, err)

	err = svc.Delete(created.ID + 1)
	require.Error(t, err)
	assert.Equal(t, structs.ErrNotFound, structs.KindOf(err))

	var count int
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.Delete(created.ID))
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
