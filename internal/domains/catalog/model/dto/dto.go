package dto

import (
	"workbrew/internal/domains/catalog/model"
	"workbrew/shared"
)

type ListCafesFilter struct {
	Search    string   `json:"search"     validate:"omitempty,max=100"`
	Amenities []string `json:"amenities"  validate:"omitempty,dive,max=50"`
	MinRating float64  `json:"min_rating" validate:"omitempty,min=0,max=5"`
}

type CafeResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"review_count"`
	PriceRange  string            `json:"price_range"`
	Amenities   []string          `json:"amenities"`
	Hours       map[string]string `json:"hours"`
	Featured    bool              `json:"featured"`
	Image       string            `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
}

func (r *CafeResponse) FromModel(mod model.Cafe) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.Latitude = mod.Latitude
	r.Longitude = mod.Longitude
	r.Rating = mod.Rating
	r.ReviewCount = mod.ReviewCount
	r.PriceRange = mod.PriceRange
	r.Amenities = mod.Amenities
	r.Hours = mod.Hours
	r.Featured = mod.Featured
	r.Image = mod.Image
	r.Description = mod.Description
}

type GetCafesResponse struct {
	Cafes     []CafeResponse `json:"cafes"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetCafesResponse) FromModels(models []model.Cafe, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cafes = make([]CafeResponse, len(models))
	for i, mod := range models {
		r.Cafes[i].FromModel(mod)
	}
}

// RegionCount is one entry of the region distribution: how many cafes sit in
// each region, most populous first.
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

type StatsResponse struct {
	TotalCafes    int           `json:"total_cafes"`
	AverageRating float64       `json:"average_rating"`
	FeaturedCount int           `json:"featured_count"`
	Regions       []RegionCount `json:"regions"`
}
