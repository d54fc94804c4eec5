package dto

// PublicationRequest is the body accepted by create and update
type PublicationRequest struct {
	PropertyType  string                    `json:"propertyType"`
	OperationType string                    `json:"operationType"`
	Description   string                    `json:"description"`
	RoomCount     int                       `json:"roomCount"`
	AreaM2        int                       `json:"areaM2"`
	AgeYears      int                       `json:"ageYears"`
	Latitude      float64                   `json:"latitude"`
	Longitude     float64                   `json:"longitude"`
	Images        []PublicationImageRequest `json:"images"`
}

// PublicationImageRequest carries a single image URL
type PublicationImageRequest struct {
	URL string `json:"url"`
}

// Publication is the read model returned for stored publications
type Publication struct {
	ID            int                `json:"id"`
	PropertyType  string             `json:"propertyType"`
	OperationType string             `json:"operationType"`
	Description   string             `json:"description"`
	RoomCount     int                `json:"roomCount"`
	AreaM2        int                `json:"areaM2"`
	AgeYears      int                `json:"ageYears"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Images        []PublicationImage `json:"images"`
}

// PublicationImage is the read model of a stored image
type PublicationImage struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}
