package models

// Publication is a real-estate listing. Images are owned by the publication
// and removed together with it.
type Publication struct {
	ID            int     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyType  string  `gorm:"type:varchar(100);not null" json:"property_type"`
	OperationType string  `gorm:"type:varchar(100);not null" json:"operation_type"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	RoomCount     int     `gorm:"not null;default:0" json:"room_count"`
	AreaM2        int     `gorm:"column:area_m2;not null;default:0" json:"area_m2"`
	AgeYears      int     `gorm:"not null;default:0" json:"age_years"`
	Latitude      float64 `gorm:"not null" json:"latitude"`
	Longitude     float64 `gorm:"not null" json:"longitude"`

	// 画像 (挿入順 = id 昇順)
	Images []PublicationImage `gorm:"foreignKey:PublicationID;references:ID;constraint:OnDelete:CASCADE" json:"images"`
}

// TableName はテーブル名を明示的に指定
func (Publication) TableName() string {
	return "Publications"
}

// ImageURLs returns the image URLs in stored order
func (p *Publication) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
