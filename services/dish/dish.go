package dish

import (
	"fmt"
	"time"

	"mealtracker-go-api/models"
	"mealtracker-go-api/services/activity"
	"mealtracker-go-api/structs"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

type DishService struct {
	DB       *gorm.DB
	Activity *activity.ActivityService

	// replaceDelay widens the window between the link delete and the link
	// insert inside the replace transaction. Tests use it to probe that
	// readers never see a half-replaced dish.
	replaceDelay time.Duration
}

func NewDishService(db *gorm.DB, act *activity.ActivityService) *DishService {
	return &DishService{DB: db, Activity: act}
}

func (s *DishService) List() ([]models.Dish, error) {
	var entities []models.Dish
	if err := s.DB.Preload("Ingredients.Ingredient").Find(&entities).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	return entities, nil
}

func (s *DishService) Get(id int64) (*models.Dish, error) {
	var entity models.Dish
	err := s.DB.Preload("Ingredients.Ingredient").Where("dish_id = ?", id).First(&entity).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewError(structs.ErrNotFound, fmt.Sprintf("no dish with id %d", id))
		}
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	return &entity, nil
}

// Create persists the dish and its link set in one transaction, after the
// whole link set has been validated. Nothing is written when any requested
// ingredient id does not resolve.
func (s *DishService) Create(param structs.DishParam) (*models.Dish, error) {
	linkEntities, err := s.validateLinks(param.Ingredients)
	if err != nil {
		return nil, err
	}

	entity := models.Dish{Name: param.DishName}

	tx := s.DB.Begin()
	if err := tx.Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Create(&entity).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := s.insertLinks(tx, entity.ID, linkEntities); err != nil {
		tx.Rollback()
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("dish.created", entity.ID, param)
	return s.Get(entity.ID)
}

// Update replaces the dish name and the entire link set. The delete and
// re-insert of the links run in one transaction so no reader observes the
// dish without its links.
func (s *DishService) Update(id int64, param structs.DishParam) (*models.Dish, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	linkEntities, err := s.validateLinks(param.Ingredients)
	if err != nil {
		return nil, err
	}

	tx := s.DB.Begin()
	if err := tx.Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Model(&models.Dish{}).Where("dish_id = ?", id).Update("dish_name", param.DishName).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Where("dish_id = ?", id).Delete(&models.DishHasIngredient{}).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if s.replaceDelay > 0 {
		time.Sleep(s.replaceDelay)
	}
	if err := s.insertLinks(tx, id, linkEntities); err != nil {
		tx.Rollback()
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("dish.updated", id, param)
	return s.Get(id)
}

// Delete rejects the removal of a dish still scheduled on the menu, then
// drops the links and the dish together.
func (s *DishService) Delete(id int64) error {
	entity, err := s.Get(id)
	if err != nil {
		return err
	}

	var menuCount int
	if err := s.DB.Model(&models.MenuItem{}).Where("dish_id = ?", id).Count(&menuCount).Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if menuCount > 0 {
		return structs.NewError(structs.ErrValidation, fmt.Sprintf("dish %d is referenced by %d menu item(s)", id, menuCount))
	}

	tx := s.DB.Begin()
	if err := tx.Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Where("dish_id = ?", id).Delete(&models.DishHasIngredient{}).Error; err != nil {
		tx.Rollback()
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Where("dish_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
		tx.Rollback()
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if err := tx.Commit().Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("dish.deleted", id, entity)
	return nil
}

// validateLinks checks every requested ingredient id against the ingredients
// table. The found count must equal the distinct requested count, otherwise
// at least one id is dangling and nothing may be written.
func (s *DishService) validateLinks(links []structs.DishLinkParam) ([]models.DishHasIngredient, error) {
	distinct := make(map[int64]struct{}, len(links))
	ingredientIds := make([]int64, 0, len(links))
	entities := make([]models.DishHasIngredient, 0, len(links))

	for _, link := range links {
		if link.Quantity < 0 {
			return nil, structs.NewError(structs.ErrValidation, fmt.Sprintf("negative quantity for ingredient %d", link.IngredientID))
		}
		quantity := link.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if _, ok := distinct[link.IngredientID]; !ok {
			distinct[link.IngredientID] = struct{}{}
			ingredientIds = append(ingredientIds, link.IngredientID)
		}
		entities = append(entities, models.DishHasIngredient{
			IngredientID: link.IngredientID,
			Quantity:     quantity,
		})
	}

	if len(ingredientIds) == 0 {
		return entities, nil
	}

	var foundCount int
	if err := s.DB.Model(&models.Ingredient{}).Where("ingredient_id in (?)", ingredientIds).Count(&foundCount).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if foundCount != len(ingredientIds) {
		return nil, structs.NewError(structs.ErrInvalidReference, "invalid ingredient ids")
	}
	return entities, nil
}

func (s *DishService) insertLinks(tx *gorm.DB, dishID int64, linkEntities []models.DishHasIngredient) error {
	if len(linkEntities) == 0 {
		return nil
	}
	records := make([]interface{}, 0, len(linkEntities))
	for i := range linkEntities {
		linkEntities[i].DishID = dishID
		records = append(records, linkEntities[i])
	}
	return gormbulk.BulkInsert(tx, records, 2000)
}

func (s *DishService) record(logName string, subjectID int64, properties interface{}) {
	if s.Activity != nil {
		s.Activity.Record(logName, "dish", subjectID, properties)
	}
}
