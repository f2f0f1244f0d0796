package models

// Category — категория проекта из закрытого перечня.
type Category string

// Перечень категорий проектов.
const (
	CategoryHotel      Category = "Hotel"
	CategoryGym        Category = "Gym"
	CategoryRestaurant Category = "Restaurant"
	CategoryECommerce  Category = "E-commerce"
	CategoryCorporate  Category = "Corporate"
	CategoryRetail     Category = "Retail"
	CategorySalon      Category = "Salon"
	CategoryEducation  Category = "Education"
	CategoryOther      Category = "Other"

	// CategoryAll используется только как значение фильтра.
	CategoryAll Category = "All"
)

// Categories возвращает все допустимые категории в порядке отображения.
func Categories() []Category {
	return []Category{
		CategoryHotel,
		CategoryGym,
		CategoryRestaurant,
		CategoryECommerce,
		CategoryCorporate,
		CategoryRetail,
		CategorySalon,
		CategoryEducation,
		CategoryOther,
	}
}

// Valid сообщает, входит ли категория в перечень.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
