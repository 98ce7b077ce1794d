package menu

import (
	"fmt"
	"time"

	"mealtracker-go-api/enums"
	"mealtracker-go-api/models"
	"mealtracker-go-api/services/activity"
	"mealtracker-go-api/structs"

	"github.com/jinzhu/gorm"
)

type MenuService struct {
	DB       *gorm.DB
	Activity *activity.ActivityService

	// Now is the reference clock for period filters, overridable in tests.
	Now func() time.Time
}

func NewMenuService(db *gorm.DB, act *activity.ActivityService) *MenuService {
	return &MenuService{DB: db, Activity: act, Now: time.Now}
}

// PeriodStart resolves a named period to the lower bound applied on
// created_at. An empty period means no bound.
func PeriodStart(now time.Time, period string) (*time.Time, error) {
	var start time.Time
	switch period {
	case "":
		return nil, nil
	case enums.PeriodLastWeek:
		start = now.AddDate(0, 0, -7)
	case enums.PeriodLastMonth:
		start = now.AddDate(0, -1, 0)
	case enums.PeriodLastQuarter:
		start = now.AddDate(0, -3, 0)
	default:
		return nil, structs.NewError(structs.ErrValidation, fmt.Sprintf("unknown period %q", period))
	}
	return &start, nil
}

// List returns menu items in the period window, each with the dish chain
// (dish, links, ingredients) resolved.
func (s *MenuService) List(period string) ([]models.MenuItem, error) {
	start, err := PeriodStart(s.Now(), period)
	if err != nil {
		return nil, err
	}

	query := s.DB.Preload("Dish.Ingredients.Ingredient")
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}

	var entities []models.MenuItem
	if err := query.Find(&entities).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	return entities, nil
}

func (s *MenuService) Get(id int64) (*models.MenuItem, error) {
	var entity models.MenuItem
	err := s.DB.Preload("Dish.Ingredients.Ingredient").Where("menu_item_id = ?", id).First(&entity).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewError(structs.ErrNotFound, fmt.Sprintf("no menu item with id %d", id))
		}
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	return &entity, nil
}

func (s *MenuService) Create(param structs.MenuItemParam) (*models.MenuItem, error) {
	if err := s.checkDishRef(param.DishID); err != nil {
		return nil, err
	}
	if !enums.ValidLabel(param.Label) {
		return nil, structs.NewError(structs.ErrValidation, fmt.Sprintf("unknown label %q", param.Label))
	}
	if !enums.ValidDayOfWeek(param.DayOfWeek) {
		return nil, structs.NewError(structs.ErrValidation, fmt.Sprintf("unknown day of week %q", param.DayOfWeek))
	}
	if param.Quantity < 0 {
		return nil, structs.NewError(structs.ErrValidation, "quantity must be positive")
	}
	quantity := param.Quantity
	if quantity == 0 {
		quantity = 1
	}

	entity := models.MenuItem{
		DishID:    param.DishID,
		Quantity:  quantity,
		Label:     param.Label,
		DayOfWeek: param.DayOfWeek,
	}
	if err := s.DB.Create(&entity).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("menu_item.created", entity.ID, param)
	return s.Get(entity.ID)
}

// Update patches the provided fields only, each validated the same way as
// on create.
func (s *MenuService) Update(id int64, patch structs.MenuItemPatchParam) (*models.MenuItem, error) {
	entity, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.DishID != nil {
		if err := s.checkDishRef(*patch.DishID); err != nil {
			return nil, err
		}
		entity.DishID = *patch.DishID
	}
	if patch.Label != nil {
		if !enums.ValidLabel(*patch.Label) {
			return nil, structs.NewError(structs.ErrValidation, fmt.Sprintf("unknown label %q", *patch.Label))
		}
		entity.Label = *patch.Label
	}
	if patch.DayOfWeek != nil {
		if !enums.ValidDayOfWeek(*patch.DayOfWeek) {
			return nil, structs.NewError(structs.ErrValidation, fmt.Sprintf("unknown day of week %q", *patch.DayOfWeek))
		}
		entity.DayOfWeek = *patch.DayOfWeek
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 1 {
			return nil, structs.NewError(structs.ErrValidation, "quantity must be at least 1")
		}
		entity.Quantity = *patch.Quantity
	}

	updates := map[string]interface{}{
		"dish_id":     entity.DishID,
		"quantity":    entity.Quantity,
		"label":       entity.Label,
		"day_of_week": entity.DayOfWeek,
	}
	if err := s.DB.Model(&models.MenuItem{}).Where("menu_item_id = ?", id).Updates(updates).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("menu_item.updated", id, patch)
	return s.Get(id)
}

func (s *MenuService) Delete(id int64) error {
	entity, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.DB.Where("menu_item_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("menu_item.deleted", id, entity)
	return nil
}

func (s *MenuService) checkDishRef(dishID int64) error {
	var count int
	if err := s.DB.Model(&models.Dish{}).Where("dish_id = ?", dishID).Count(&count).Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if count == 0 {
		return structs.NewError(structs.ErrInvalidReference, fmt.Sprintf("no dish with id %d", dishID))
	}
	return nil
}

func (s *MenuService) record(logName string, subjectID int64, properties interface{}) {
	if s.Activity != nil {
		s.Activity.Record(logName, "menu_item", subjectID, properties)
	}
}
