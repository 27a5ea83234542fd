package models

const (
	LocationTypeProvince = "province"
	LocationTypeDistrict = "district"
	LocationTypeCommune  = "commune"
)

// Location is a self-referencing tree: provinces have a nil parent,
// districts point at a province, communes at a district.
type Location struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Type     string `gorm:"size:20;not null;index" json:"type"`
	ParentID *int   `gorm:"index" json:"parent_id"`
}
