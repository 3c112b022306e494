package models

type Restaurant struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// MenuItem is a row of a per-restaurant menu table (menu_<restaurantId>).
// Fields are pointers so a value missing from the request is written as
// NULL and rejected by the table's own constraints.
type MenuItem struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	ItemName    *string  `json:"item_name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}
