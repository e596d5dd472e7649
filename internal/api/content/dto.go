package content

import (
	"EportsTech/internal/entity"
)

type ServiceRequest struct {
	ID                  string                 `json:"id" validate:"required,max=128"`
	Icon                string                 `json:"icon" validate:"max=64"`
	Category            entity.ServiceCategory `json:"category" validate:"required,category"`
	Title               entity.LocalizedText   `json:"title" validate:"required"`
	Description         entity.LocalizedText   `json:"description"`
	ExtendedDescription entity.LocalizedText   `json:"extendedDescription"`
	Features            entity.LocalizedList   `json:"features"`
	Visible             bool                   `json:"visible"`
	Order               int                    `json:"order" validate:"gte=0"`
}

func (r ServiceRequest) ToEntity() entity.Service {
	return entity.Service{
		ID:                  r.ID,
		Icon:                r.Icon,
		Category:            r.Category,
		Title:               r.Title,
		Description:         r.Description,
		ExtendedDescription: r.ExtendedDescription,
		Features:            r.Features,
		Visible:             r.Visible,
		Order:               r.Order,
	}.Normalize()
}

type UpsertServicesRequest struct {
	Services []ServiceRequest `json:"services" validate:"required,min=1,dive"`
}

type ConfiguratorItemRequest struct {
	ID       string                 `json:"id" validate:"required,max=128"`
	Icon     string                 `json:"icon" validate:"max=64"`
	Category entity.ServiceCategory `json:"category" validate:"required,category"`
	Title    entity.LocalizedText   `json:"title" validate:"required"`
	Benefit  entity.LocalizedText   `json:"benefit"`
	Visible  bool                   `json:"visible"`
	Order    int                    `json:"order" validate:"gte=0"`
}

func (r ConfiguratorItemRequest) ToEntity() entity.ConfiguratorItem {
	return entity.ConfiguratorItem{
		ID:       r.ID,
		Icon:     r.Icon,
		Category: r.Category,
		Title:    r.Title,
		Benefit:  r.Benefit,
		Visible:  r.Visible,
		Order:    r.Order,
	}.Normalize()
}

type SectionRequest struct {
	ID      string               `json:"id" validate:"required,max=128"`
	Title   entity.LocalizedText `json:"title" validate:"required"`
	Content entity.LocalizedText `json:"content"`
	Order   int                  `json:"order" validate:"gte=0"`
}

func (r SectionRequest) ToEntity() entity.CustomSection {
	return entity.CustomSection{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
		Order:   r.Order,
	}.Normalize()
}

type UpsertSectionsRequest struct {
	Sections []SectionRequest `json:"sections" validate:"dive"`
}

type VisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

const (
	MoveUp   = "up"
	MoveDown = "down"
)

type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type SingletonResponse[T any] struct {
	Status entity.CollectionStatus `json:"status"`
	Data   T                       `json:"data"`
}

type RenderedService struct {
	ID                  string                 `json:"id"`
	Icon                string                 `json:"icon"`
	Category            entity.ServiceCategory `json:"category"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	ExtendedDescription string                 `json:"extendedDescription"`
	Features            []string               `json:"features"`
	Order               int                    `json:"order"`
}

type RenderedServicesResponse struct {
	Status   entity.CollectionStatus `json:"status"`
	Language entity.Language         `json:"language"`
	Services []RenderedService       `json:"services"`
}

type RenderedHero struct {
	Image          string               `json:"image"`
	ImagePosition  entity.ImagePosition `json:"imagePosition"`
	OverlayOpacity float64              `json:"overlayOpacity"`
	Title          string               `json:"title"`
	Subtitle       string               `json:"subtitle"`
	CTAText        string               `json:"ctaText"`
}

type RenderedBenefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RenderedBenefits struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Items    []RenderedBenefit `json:"items"`
}

type RenderedFooter struct {
	Copyright string `json:"copyright"`
	Privacy   string `json:"privacy"`
	Legal     string `json:"legal"`
	Cookies   string `json:"cookies"`
}

type RenderedBrand struct {
	Status       entity.CollectionStatus `json:"status"`
	Language     entity.Language         `json:"language"`
	Version      int64                   `json:"version"`
	SiteName     string                  `json:"siteName"`
	Favicon      string                  `json:"favicon"`
	NavLogo      string                  `json:"navLogo"`
	FooterLogo   string                  `json:"footerLogo"`
	ContactEmail string                  `json:"contactEmail"`
	ContactPhone string                  `json:"contactPhone"`
	Hero         RenderedHero            `json:"hero"`
	Benefits     RenderedBenefits        `json:"benefits"`
	Footer       RenderedFooter          `json:"footer"`
}

// PrefillResponse is what the contact form is pre-populated with.
type PrefillResponse struct {
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
}

type InsightResponse struct {
	ServiceInterest string `json:"serviceInterest"`
	Growth          string `json:"growth"`
	Security        string `json:"security"`
}
