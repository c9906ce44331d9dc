package models

// Location is a deduplicated (country, city, address) triple. Repeat inserts of
// the same triple reuse the existing row.
type Location struct {
	BaseModel
	Country string `gorm:"size:100;not null;uniqueIndex:idx_locations_triple;index:idx_locations_country_city" json:"country"`
	City    string `gorm:"size:100;not null;uniqueIndex:idx_locations_triple;index:idx_locations_country_city" json:"city"`
	Address string `gorm:"size:255;not null;uniqueIndex:idx_locations_triple" json:"address"`
}
