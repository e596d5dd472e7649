package leads

import "EportsTech/internal/entity"

type LeadRequest struct {
	RequestID       string `json:"requestId" validate:"required,max=64"`
	FullName        string `json:"fullName" validate:"required,max=200"`
	Email           string `json:"email" validate:"omitempty,email,max=254"`
	Phone           string `json:"phone" validate:"required,max=32"`
	Company         string `json:"company" validate:"max=200"`
	ServiceInterest string `json:"serviceInterest" validate:"max=200"`
	Message         string `json:"message" validate:"max=5000"`
	Address         string `json:"address" validate:"max=300"`
	City            string `json:"city" validate:"max=120"`
}

type ConfiguratorLeadRequest struct {
	RequestID string   `json:"requestId" validate:"required,max=64"`
	FullName  string   `json:"fullName" validate:"required,max=200"`
	Company   string   `json:"company" validate:"max=200"`
	Email     string   `json:"email" validate:"omitempty,email,max=254"`
	Phone     string   `json:"phone" validate:"required,max=32"`
	Address   string   `json:"address" validate:"max=300"`
	City      string   `json:"city" validate:"max=120"`
	ItemIDs   []string `json:"itemIds" validate:"required,min=1,max=100,dive,required"`
}

type SubmitResponse struct {
	Success   bool   `json:"success"`
	ID        string `json:"id"`
	Duplicate bool   `json:"duplicate"`
}

type LeadListResponse struct {
	Leads []entity.Lead `json:"leads"`
	Total int           `json:"total"`
}

type ConfiguratorLeadListResponse struct {
	Leads []entity.ConfiguratorLead `json:"leads"`
	Total int                       `json:"total"`
}
