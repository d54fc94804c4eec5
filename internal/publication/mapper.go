package publication

import (
	"real-estate-publications/internal/dto"
	"real-estate-publications/internal/models"
)

// ToReadModel converts a stored publication to its read model
func ToReadModel(p models.Publication) dto.Publication {
	images := make([]dto.PublicationImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, dto.PublicationImage{ID: img.ID, URL: img.URL})
	}
	return dto.Publication{
		ID:            p.ID,
		PropertyType:  p.PropertyType,
		OperationType: p.OperationType,
		Description:   p.Description,
		RoomCount:     p.RoomCount,
		AreaM2:        p.AreaM2,
		AgeYears:      p.AgeYears,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Images:        images,
	}
}

// ToReadModels converts a list of stored publications, keeping order
func ToReadModels(items []models.Publication) []dto.Publication {
	res := make([]dto.Publication, 0, len(items))
	for _, p := range items {
		res = append(res, ToReadModel(p))
	}
	return res
}

// FromCreateRequest builds a new, unsaved publication. Ids are left for the store.
func FromCreateRequest(req dto.PublicationRequest) models.Publication {
	p := models.Publication{}
	ApplyUpdate(&p, req)
	return p
}

// ApplyUpdate overwrites every scalar field and replaces the whole image set
func ApplyUpdate(p *models.Publication, req dto.PublicationRequest) {
	p.PropertyType = req.PropertyType
	p.OperationType = req.OperationType
	p.Description = req.Description
	p.RoomCount = req.RoomCount
	p.AreaM2 = req.AreaM2
	p.AgeYears = req.AgeYears
	p.Latitude = req.Latitude
	p.Longitude = req.Longitude
	p.Images = newImages(req.Images)
}

func newImages(reqs []dto.PublicationImageRequest) []models.PublicationImage {
	images := make([]models.PublicationImage, 0, len(reqs))
	for _, r := range reqs {
		images = append(images, models.PublicationImage{URL: r.URL})
	}
	return images
}
