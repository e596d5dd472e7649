package mediaService

import (
	"errors"
	"mime/multipart"

	"EportsTech/internal/api/media"
	contextPkg "EportsTech/pkg/context"
	"EportsTech/pkg/s3"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IMediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (media.UploadResponse, error)
	Delete(ctx context.Context, url string) error
}

type mediaService struct {
	log      *logrus.Logger
	s3Client s3.ItfS3
	utils    utils.IUtils
}

// NewMediaService accepts a nil s3 client; uploads then fail with
// ErrStorageDisabled.
func NewMediaService(log *logrus.Logger, s3Client s3.ItfS3, utils utils.IUtils) IMediaService {
	return &mediaService{
		log:      log,
		s3Client: s3Client,
		utils:    utils,
	}
}

func (s *mediaService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (media.UploadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.s3Client == nil {
		return media.UploadResponse{}, media.ErrStorageDisabled
	}

	if folder == "" {
		folder = media.DefaultFolder
	}
	if !media.Folders[folder] {
		return media.UploadResponse{}, media.ErrInvalidFolder
	}

	contentType, err := s.utils.ValidateImageFile(file)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNoFile):
			return media.UploadResponse{}, media.ErrNoFile
		case errors.Is(err, utils.ErrFileTooLarge):
			return media.UploadResponse{}, media.ErrFileTooLarge
		case errors.Is(err, utils.ErrUnsupportedType):
			return media.UploadResponse{}, media.ErrInvalidFileType
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to inspect uploaded file")
		return media.UploadResponse{}, media.ErrUploadFile
	}

	url, err := s.s3Client.UploadFile(ctx, file, folder, contentType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"folder":     folder,
			"error":      err.Error(),
		}).Error("Failed to upload file to S3")
		return media.UploadResponse{}, media.ErrUploadFile
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   contextPkg.GetAdminID(ctx),
		"url":        url,
	}).Info("Media uploaded")

	return media.UploadResponse{URL: url, ContentType: contentType, Folder: folder}, nil
}

func (s *mediaService) Delete(ctx context.Context, url string) error {
	if s.s3Client == nil {
		return media.ErrStorageDisabled
	}

	if err := s.s3Client.DeleteFile(ctx, url); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"url":        url,
			"error":      err.Error(),
		}).Error("Failed to delete file from S3")
		return media.ErrDeleteFile
	}
	return nil
}
