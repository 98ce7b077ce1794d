package grocery

import (
	"fmt"
	"sort"
	"time"

	"mealtracker-go-api/models"
	"mealtracker-go-api/services/menu"
	"mealtracker-go-api/structs"

	"github.com/jinzhu/gorm"
)

// GroceryService derives shopping lists from menu items. It keeps no state
// of its own, every call reads the menu chain and multiplies quantities.
type GroceryService struct {
	DB *gorm.DB

	// Now is the reference clock for period windows, overridable in tests.
	Now func() time.Time
}

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{DB: db, Now: time.Now}
}

// Generate returns one line per dish link of the menu item, the link
// quantity multiplied by the menu item quantity. Zero quantities yield
// zero-quantity lines, they are kept rather than filtered.
func (s *GroceryService) Generate(menuItemID int64) ([]structs.GroceryLine, error) {
	var item models.MenuItem
	err := s.DB.Preload("Dish.Ingredients.Ingredient").Where("menu_item_id = ?", menuItemID).First(&item).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewError(structs.ErrNotFound, fmt.Sprintf("no menu item with id %d", menuItemID))
		}
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	lines := make([]structs.GroceryLine, 0, len(item.Dish.Ingredients))
	for _, link := range item.Dish.Ingredients {
		lines = append(lines, structs.GroceryLine{
			IngredientID:   link.IngredientID,
			IngredientName: link.Ingredient.Name,
			TotalQuantity:  link.Quantity * float64(item.Quantity),
		})
	}
	return lines, nil
}

// GenerateForPeriod aggregates across every menu item in the period window,
// lines merged by ingredient and quantities summed. Output is ordered by
// ingredient id.
func (s *GroceryService) GenerateForPeriod(period string) ([]structs.GroceryLine, error) {
	start, err := menu.PeriodStart(s.Now(), period)
	if err != nil {
		return nil, err
	}

	query := s.DB.Preload("Dish.Ingredients.Ingredient")
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, structs.NewError(structs.ErrStorageFailure, err.Error())
	}

	totals := make(map[int64]*structs.GroceryLine)
	for _, item := range items {
		for _, link := range item.Dish.Ingredients {
			line, ok := totals[link.IngredientID]
			if !ok {
				line = &structs.GroceryLine{
					IngredientID:   link.IngredientID,
					IngredientName: link.Ingredient.Name,
				}
				totals[link.IngredientID] = line
			}
			line.TotalQuantity += link.Quantity * float64(item.Quantity)
		}
	}

	lines := make([]structs.GroceryLine, 0, len(totals))
	for _, line := range totals {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].IngredientID < lines[j].IngredientID
	})
	return lines, nil
}
