package business

const UnknownCategory = "Otros"

var categoryNames = map[int64]string{
	1: "Restaurantes",
	2: "Belleza y Spa",
	3: "Servicios Técnicos",
	4: "Salud",
	5: "Moda y Accesorios",
	6: "Educación",
	7: "Deportes y Fitness",
	8: "Servicios Automotrices",
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func CategoryName(id int64) string {
	if name, ok := categoryNames[id]; ok {
		return name
	}
	return UnknownCategory
}

// Categories lists the known categories ordered by id.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for id := int64(1); id <= int64(len(categoryNames)); id++ {
		out = append(out, Category{ID: id, Name: categoryNames[id]})
	}
	return out
}
