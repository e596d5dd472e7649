package content

import "EportsTech/pkg/response"

var (
	ErrServiceNotFound          = response.NewError(404, "service not found")
	ErrConfiguratorItemNotFound = response.NewError(404, "configurator item not found")
	ErrInvalidPatch             = response.NewError(400, "invalid patch document")
	ErrInvalidBrandConfig       = response.NewError(400, "invalid brand config")
	ErrInvalidBotConfig         = response.NewError(400, "invalid bot config")
	ErrInvalidMove              = response.NewError(400, "item cannot move further")
	ErrDuplicateID              = response.NewError(400, "duplicate id in request")
	ErrSaveContent              = response.NewError(500, "failed to save content")
	ErrStoreUnavailable         = response.NewError(503, "content store unavailable")
)
