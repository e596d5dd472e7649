package media

import (
	"EportsTech/pkg/response"
	"net/http"
)

var (
	ErrNoFile          = response.NewError(http.StatusBadRequest, "no file uploaded")
	ErrFileTooLarge    = response.NewError(http.StatusBadRequest, "file too large")
	ErrInvalidFileType = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrInvalidFolder   = response.NewError(http.StatusBadRequest, "invalid folder")
	ErrUploadFile      = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrDeleteFile      = response.NewError(http.StatusInternalServerError, "failed to delete file")
	ErrStorageDisabled = response.NewError(http.StatusServiceUnavailable, "media storage is not configured")
)
