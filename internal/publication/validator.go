package publication

import (
	"strings"

	"real-estate-publications/internal/dto"
)

// Validate checks a create/update request and returns the first violated rule.
// Rule order is fixed so error messages stay deterministic.
func Validate(req dto.PublicationRequest) error {
	if isBlank(req.PropertyType) {
		return invalid("propertyType is required.")
	}
	if isBlank(req.OperationType) {
		return invalid("operationType is required.")
	}
	if isBlank(req.Description) {
		return invalid("description is required.")
	}
	if req.RoomCount < 0 || req.AreaM2 < 0 || req.AgeYears < 0 {
		return invalid("roomCount, areaM2 and ageYears cannot be negative.")
	}
	// Negative coordinates are rejected here too, which excludes the southern
	// and western hemispheres. Kept for compatibility with existing clients.
	if req.Latitude < 0 || req.Longitude < 0 {
		return invalid("latitude and longitude are required.")
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return invalid("latitude must be between -90 and 90.")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return invalid("longitude must be between -180 and 180.")
	}
	for _, img := range req.Images {
		if isBlank(img.URL) {
			return invalid("all images must have a valid URL.")
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
