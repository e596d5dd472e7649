package contentsync

import "EportsTech/internal/api/content"

type SyncRequest struct {
	Services          []content.ServiceRequest          `json:"services" validate:"required,dive"`
	ConfiguratorItems []content.ConfiguratorItemRequest `json:"configuratorItems" validate:"required,dive"`
}

type SyncCounts struct {
	ServicesCount int `json:"servicesCount"`
	ItemsCount    int `json:"itemsCount"`
}

type SyncResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    *SyncCounts `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
