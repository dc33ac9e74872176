package enums

// Category identifies a design dimension within a room.
type Category string

const (
	CategoryFlooring  Category = "flooring"
	CategoryWallColor Category = "wall_color"
	CategoryFurniture Category = "furniture"
	CategoryLighting  Category = "lighting"
	CategoryDecor     Category = "decor"
)

var validCategories = []Category{
	CategoryFlooring,
	CategoryWallColor,
	CategoryFurniture,
	CategoryLighting,
	CategoryDecor,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// CategoryNames returns the catalog categories in display order.
func CategoryNames() []string {
	names := make([]string, 0, len(validCategories))
	for _, category := range validCategories {
		names = append(names, category.String())
	}
	return names
}
