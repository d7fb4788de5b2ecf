package business

import (
	"strconv"

	"github.com/BruksfildServices01/nearbiz/internal/domain/geo"
	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

// Business is a read-only snapshot of an upstream business record.
type Business struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CategoryID  int64           `json:"category_id"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Coordinates *geo.Coordinate `json:"coordinates"`
	Hours       schedule.Hours  `json:"hours"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url,omitempty"`
}

func (b Business) Location() (geo.Coordinate, bool) {
	if b.Coordinates == nil {
		return geo.Coordinate{}, false
	}
	return *b.Coordinates, true
}

func (b Business) CategoryKey() string {
	return strconv.FormatInt(b.CategoryID, 10)
}

func (b Business) CategoryName() string {
	return CategoryName(b.CategoryID)
}

func (b Business) SearchFields() []string {
	return []string{b.Name, b.Description, b.CategoryName()}
}

var _ geo.Place = Business{}
