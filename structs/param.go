package structs

// IngredientParam is the request body for ingredient create/update.
type IngredientParam struct {
	Name string `json:"name" form:"name"`
}

// DishLinkParam is one requested dish-ingredient link.
// Quantity 0 means "not provided" and falls back to 1.
type DishLinkParam struct {
	IngredientID int64   `json:"ingredient_id" form:"ingredient_id"`
	Quantity     float64 `json:"quantity" form:"quantity"`
}

// DishParam is the request body for dish create/update.
type DishParam struct {
	DishName    string          `json:"dishName" form:"dishName"`
	Ingredients []DishLinkParam `json:"ingredients" form:"ingredients"`
}

// MenuItemParam is the request body for menu item create.
type MenuItemParam struct {
	DishID    int64  `json:"dish_id" form:"dish_id"`
	Quantity  int    `json:"quantity" form:"quantity"`
	Label     string `json:"label" form:"label"`
	DayOfWeek string `json:"day_of_week" form:"day_of_week"`
}

// MenuItemPatchParam is the request body for menu item update.
// Nil fields are left untouched.
type MenuItemPatchParam struct {
	DishID    *int64  `json:"dish_id" form:"dish_id"`
	Quantity  *int    `json:"quantity" form:"quantity"`
	Label     *string `json:"label" form:"label"`
	DayOfWeek *string `json:"day_of_week" form:"day_of_week"`
}

// GroceryLine is one aggregated (ingredient, total quantity) pair.
type GroceryLine struct {
	IngredientID   int64   `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	TotalQuantity  float64 `json:"total_quantity"`
}
