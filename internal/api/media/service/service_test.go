package mediaService

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"EportsTech/internal/api/media"
	"EportsTech/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type fakeS3 struct {
	uploadedFolder string
	uploadedType   string
	deleted        []string
	err            error
}

func (f *fakeS3) UploadFile(_ context.Context, file *multipart.FileHeader, folder, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploadedFolder, f.uploadedType = folder, contentType
	return "https://cdn.eportstech.com/" + folder + "/" + file.Filename, nil
}

func (f *fakeS3) DeleteFile(_ context.Context, url string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func newService(s3 *fakeS3) IMediaService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if s3 == nil {
		return NewMediaService(log, nil, utils.New())
	}
	return NewMediaService(log, s3, utils.New())
}

func TestUploadImage(t *testing.T) {
	s3 := &fakeS3{}
	resp, err := newService(s3).Upload(context.Background(), fileHeader(t, "logo.png", pngHeader), "logo")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.eportstech.com/logo/logo.png", resp.URL)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, "logo", resp.Folder)
	assert.Equal(t, "image/png", s3.uploadedType)
}

func TestUploadDefaultsFolder(t *testing.T) {
	s3 := &fakeS3{}
	resp, err := newService(s3).Upload(context.Background(), fileHeader(t, "a.png", pngHeader), "")
	require.NoError(t, err)
	assert.Equal(t, media.DefaultFolder, resp.Folder)
	assert.Equal(t, media.DefaultFolder, s3.uploadedFolder)
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name    string
		file    func(t *testing.T) *multipart.FileHeader
		folder  string
		wantErr error
	}{
		{
			name:    "unknown folder",
			file:    func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "a.png", pngHeader) },
			folder:  "../etc",
			wantErr: media.ErrInvalidFolder,
		},
		{
			name:    "missing file",
			file:    func(*testing.T) *multipart.FileHeader { return nil },
			folder:  "hero",
			wantErr: media.ErrNoFile,
		},
		{
			name:    "wrong extension",
			file:    func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "notes.txt", []byte("hello")) },
			folder:  "hero",
			wantErr: media.ErrInvalidFileType,
		},
		{
			name:    "text disguised as image",
			file:    func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "fake.png", []byte("plain text body")) },
			folder:  "hero",
			wantErr: media.ErrInvalidFileType,
		},
		{
			name:    "too large",
			file:    func(t *testing.T) *multipart.FileHeader { return fileHeader(t, "big.png", append(pngHeader, make([]byte, 6<<20)...)) },
			folder:  "hero",
			wantErr: media.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s3 := &fakeS3{}
			_, err := newService(s3).Upload(context.Background(), tt.file(t), tt.folder)
			assert.Equal(t, tt.wantErr, err)
			assert.Empty(t, s3.uploadedFolder)
		})
	}
}

func TestUploadStorageFailure(t *testing.T) {
	_, err := newService(&fakeS3{err: errors.New("access denied")}).
		Upload(context.Background(), fileHeader(t, "a.png", pngHeader), "hero")
	assert.Equal(t, media.ErrUploadFile, err)
}

func TestStorageDisabled(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Upload(context.Background(), fileHeader(t, "a.png", pngHeader), "hero")
	assert.Equal(t, media.ErrStorageDisabled, err)

	assert.Equal(t, media.ErrStorageDisabled, svc.Delete(context.Background(), "https://cdn.eportstech.com/hero/a.png"))
}

func TestDelete(t *testing.T) {
	s3 := &fakeS3{}
	require.NoError(t, newService(s3).Delete(context.Background(), "https://cdn.eportstech.com/hero/a.png"))
	assert.Equal(t, []string{"https://cdn.eportstech.com/hero/a.png"}, s3.deleted)

	s3.err = errors.New("boom")
	assert.Equal(t, media.ErrDeleteFile, newService(s3).Delete(context.Background(), "x"))
}
