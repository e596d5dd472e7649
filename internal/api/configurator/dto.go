package configurators

import (
	"time"

	"EportsTech/internal/configurator"
)

type SessionResponse struct {
	ID            string                    `json:"id"`
	State         configurator.State        `json:"state"`
	Items         []configurator.ItemResult `json:"items"`
	SelectedCount int                       `json:"selectedCount"`
	ExpiresAt     time.Time                 `json:"expiresAt"`
}

type QuoteResponse struct {
	Session SessionResponse    `json:"session"`
	Quote   configurator.Quote `json:"quote"`
}
