// internal/services/storage_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printcraft/store-backend/internal/config"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(data []byte) multipart.File {
	return memFile{bytes.NewReader(data)}
}

func newHeader(filename string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}

func newLocalStorage(t *testing.T) *StorageService {
	t.Helper()
	return &StorageService{config: &config.Config{}, localDir: t.TempDir()}
}

func TestStorageServiceLocalUploadAndDelete(t *testing.T) {
	svc := newLocalStorage(t)

	result, err := svc.UploadFile(newMemFile(pngBytes), newHeader("photo.png", int64(len(pngBytes))), ProductImageOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
	assert.Equal(t, int64(len(pngBytes)), result.Size)

	written, err := os.ReadFile(filepath.Join(svc.localDir, filepath.FromSlash(result.Key)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)

	require.NoError(t, svc.DeleteFile(result.Key))
	_, err = os.Stat(filepath.Join(svc.localDir, filepath.FromSlash(result.Key)))
	assert.True(t, os.IsNotExist(err))

	// Deleting an already-removed key is not an error.
	assert.NoError(t, svc.DeleteFile(result.Key))
}

func TestStorageServiceRejectsDisallowedExtension(t *testing.T) {
	svc := newLocalStorage(t)

	_, err := svc.UploadFile(newMemFile(pngBytes), newHeader("payload.exe", int64(len(pngBytes))), ProductImageOptions())
	assert.ErrorContains(t, err, "not allowed")
}

func TestStorageServiceRejectsOversizedFile(t *testing.T) {
	svc := newLocalStorage(t)

	opts := ProductImageOptions()
	header := newHeader("big.png", opts.MaxSize+1)
	_, err := svc.UploadFile(newMemFile(pngBytes), header, opts)
	assert.ErrorContains(t, err, "exceeds maximum")
}

func TestValidateImage(t *testing.T) {
	svc := newLocalStorage(t)

	assert.NoError(t, svc.ValidateImage(newMemFile(pngBytes)))
	assert.NoError(t, svc.ValidateImage(newMemFile([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0})))
	assert.NoError(t, svc.ValidateImage(newMemFile([]byte("GIF89a......"))))
	assert.NoError(t, svc.ValidateImage(newMemFile(append([]byte("RIFF\x00\x00\x00\x00WEBP"), 0))))

	err := svc.ValidateImage(newMemFile([]byte("<html>not an image</html>")))
	assert.ErrorContains(t, err, "invalid image")
}

func TestValidateImageRewindsFile(t *testing.T) {
	svc := newLocalStorage(t)

	f := newMemFile(pngBytes)
	require.NoError(t, svc.ValidateImage(f))

	// The upload path reads the whole file after validation.
	buf := make([]byte, len(pngBytes))
	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(pngBytes), n)
	assert.Equal(t, pngBytes, buf)
}
