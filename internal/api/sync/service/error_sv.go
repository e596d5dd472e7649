package syncService

import (
	"errors"

	"EportsTech/pkg/response"
)

// wrap keeps a client error from the content service (duplicate ids, bad
// input) and otherwise reports the stage that failed.
func wrap(stage error, err error) error {
	var respErr *response.Error
	if errors.As(err, &respErr) && respErr.Code < 500 {
		return err
	}
	return stage
}
