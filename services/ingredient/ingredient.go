package ingredient

import (
	"fmt"
	"strings"

	"mealtracker-go-api/models"
	"mealtracker-go-api/services/activity"
	"mealtracker-go-api/structs"

	"github.com/jinzhu/gorm"
)

type IngredientService struct {
	DB       *gorm.DB
	Activity *activity.ActivityService
}

func NewIngredientService(db *gorm.DB, act *activity.ActivityService) *IngredientService {
	return &IngredientService{DB: db, Activity: act}
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var entities []models.Ingredient
	if err := s.DB.Find(&entities).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	return entities, nil
}

func (s *IngredientService) Get(id int64) (*models.Ingredient, error) {
	var entity models.Ingredient
	if err := s.DB.Where("ingredient_id = ?", id).First(&entity).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewError(structs.ErrNotFound, fmt.Sprintf("no ingredient with id %d", id))
		}
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	return &entity, nil
}

func (s *IngredientService) Create(param structs.IngredientParam) (*models.Ingredient, error) {
	name := strings.TrimSpace(param.Name)
	if name == "" {
		return nil, structs.NewError(structs.ErrValidation, "ingredient name is required")
	}

	entity := models.Ingredient{Name: name}
	if err := s.DB.Create(&entity).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("ingredient.created", entity.ID, entity)
	return &entity, nil
}

func (s *IngredientService) Update(id int64, param structs.IngredientParam) (*models.Ingredient, error) {
	name := strings.TrimSpace(param.Name)
	if name == "" {
		return nil, structs.NewError(structs.ErrValidation, "ingredient name is required")
	}

	entity, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	entity.Name = name
	if err := s.DB.Save(entity).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("ingredient.updated", entity.ID, entity)
	return entity, nil
}

// Delete rejects the removal of an ingredient still linked to a dish, so
// dish_has_ingredients never carries dangling ingredient ids.
func (s *IngredientService) Delete(id int64) error {
	entity, err := s.Get(id)
	if err != nil {
		return err
	}

	var linkCount int
	if err := s.DB.Model(&models.DishHasIngredient{}).Where("ingredient_id = ?", id).Count(&linkCount).Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}
	if linkCount > 0 {
		return structs.NewError(structs.ErrValidation, fmt.Sprintf("ingredient %d is used by %d dish link(s)", id, linkCount))
	}

	if err := s.DB.Where("ingredient_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
		return structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	s.record("ingredient.deleted", id, entity)
	return nil
}

func (s *IngredientService) record(logName string, subjectID int64, properties interface{}) {
	if s.Activity != nil {
		s.Activity.Record(logName, "ingredient", subjectID, properties)
	}
}
