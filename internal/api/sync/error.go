package contentsync

import "EportsTech/pkg/response"

var (
	ErrMissingCollections = response.NewError(400, "missing services or configuratorItems")
	ErrServicesSync       = response.NewError(502, "services sync failed")
	ErrItemsSync          = response.NewError(502, "items sync failed")
)
