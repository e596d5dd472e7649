package entity

type ServiceCategory string

const (
	CategoryConsulting       ServiceCategory = "consulting"
	CategoryConnectivity     ServiceCategory = "connectivity"
	CategoryNetworking       ServiceCategory = "networking"
	CategoryCybersecurity    ServiceCategory = "cybersecurity"
	CategoryITInfrastructure ServiceCategory = "it_infrastructure"
	CategoryTelephony        ServiceCategory = "telephony"
	CategoryIOT              ServiceCategory = "iot"
	CategorySecurity         ServiceCategory = "security"
)

var ServiceCategories = []ServiceCategory{
	CategoryConsulting,
	CategoryConnectivity,
	CategoryNetworking,
	CategoryCybersecurity,
	CategoryITInfrastructure,
	CategoryTelephony,
	CategoryIOT,
	CategorySecurity,
}

func (c ServiceCategory) Valid() bool {
	for _, s := range ServiceCategories {
		if s == c {
			return true
		}
	}
	return false
}

type Service struct {
	ID                  string          `json:"id"`
	Icon                string          `json:"icon"`
	Category            ServiceCategory `json:"category"`
	Title               LocalizedText   `json:"title"`
	Description         LocalizedText   `json:"description"`
	ExtendedDescription LocalizedText   `json:"extendedDescription,omitempty"`
	Features            LocalizedList   `json:"features,omitempty"`
	Visible             bool            `json:"visible"`
	Order               int             `json:"order"`
}

func (s Service) Normalize() Service {
	s.Title = s.Title.Normalize()
	s.Description = s.Description.Normalize()
	if s.ExtendedDescription != nil {
		s.ExtendedDescription = s.ExtendedDescription.Normalize()
	}
	if s.Features != nil {
		s.Features = s.Features.Normalize()
	}
	return s
}

type ConfiguratorItem struct {
	ID       string          `json:"id"`
	Icon     string          `json:"icon"`
	Category ServiceCategory `json:"category"`
	Title    LocalizedText   `json:"title"`
	Benefit  LocalizedText   `json:"benefit"`
	Visible  bool            `json:"visible"`
	Order    int             `json:"order"`
}

func (i ConfiguratorItem) Normalize() ConfiguratorItem {
	i.Title = i.Title.Normalize()
	i.Benefit = i.Benefit.Normalize()
	return i
}

// CustomSection is a free-form block the admin can append below the fixed sections.
type CustomSection struct {
	ID      string        `json:"id"`
	Title   LocalizedText `json:"title"`
	Content LocalizedText `json:"content"`
	Order   int           `json:"order"`
}

func (c CustomSection) Normalize() CustomSection {
	c.Title = c.Title.Normalize()
	c.Content = c.Content.Normalize()
	return c
}

type CollectionStatus string

const (
	CollectionOK          CollectionStatus = "ok"
	CollectionEmpty       CollectionStatus = "empty"
	CollectionUnavailable CollectionStatus = "unavailable"
)

// CollectionResult tells callers whether Items came from the store or from
// the bundled defaults, and why.
type CollectionResult[T any] struct {
	Status CollectionStatus `json:"status"`
	Items  []T              `json:"items"`
}
