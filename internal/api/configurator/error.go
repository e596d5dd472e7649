package configurators

import "EportsTech/pkg/response"

var (
	ErrSessionNotFound    = response.NewError(404, "configurator session not found")
	ErrSessionUnavailable = response.NewError(503, "configurator session store unavailable")
	ErrEmptySelection     = response.NewError(400, "select at least one item")
)
