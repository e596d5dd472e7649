package entity

import "time"

const (
	ServiceInterestCustomConfiguration = "Custom Configuration"
	ServiceInterestConsulting          = "Consulting"
)

type Lead struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"requestId"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Company         string    `json:"company"`
	ServiceInterest string    `json:"serviceInterest"`
	Message         string    `json:"message"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ConfiguratorLead struct {
	ID            string             `json:"id"`
	RequestID     string             `json:"requestId"`
	FullName      string             `json:"fullName"`
	Company       string             `json:"company"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address,omitempty"`
	City          string             `json:"city,omitempty"`
	SelectedItems []ConfiguratorItem `json:"selectedItems"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type NotificationSettings struct {
	EmailRecipients      []string  `json:"emailRecipients"`
	WhatsappRecipients   []string  `json:"whatsappRecipients"`
	NotifyOnLead         bool      `json:"notifyOnLead"`
	NotifyOnConfigurator bool      `json:"notifyOnConfigurator"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (n NotificationSettings) Normalize() NotificationSettings {
	if n.EmailRecipients == nil {
		n.EmailRecipients = []string{}
	}
	if n.WhatsappRecipients == nil {
		n.WhatsappRecipients = []string{}
	}
	return n
}
