package minio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dashboard-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestValidateConfigAppendsPort(t *testing.T) {
	cfg := &config.MinIOConfig{Endpoint: "minio", AccessKey: "a", SecretKey: "s", Region: "us-east-1", Bucket: "exports"}
	assert.NoError(t, validateConfig(cfg))
	assert.Equal(t, "minio:9000", cfg.Endpoint)
}

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{"valid", "dashboard-exports", false},
		{"too short", "ab", true},
		{"uppercase", "Dashboard", true},
		{"leading hyphen", "-exports", true},
		{"too long", strings.Repeat("a", 64), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBucketName(tt.bucket)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUploadRequest(t *testing.T) {
	req := &UploadRequest{
		BucketName:  "exports",
		ObjectName:  "exports/abc/publication_summary.csv",
		Reader:      strings.NewReader("x"),
		Size:        1,
		ContentType: "text/csv",
	}
	assert.NoError(t, validateUploadRequest(req))

	req.ObjectName = "/leading"
	assert.Error(t, validateUploadRequest(req))
}

func TestValidatePresignedURLRequest(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "exports", ObjectName: "a.csv", Method: MethodGET, Expiry: 30 * time.Minute}
	assert.NoError(t, validatePresignedURLRequest(req))

	req.Expiry = 8 * 24 * time.Hour
	assert.Error(t, validatePresignedURLRequest(req))
}

func TestHandleMinIOError(t *testing.T) {
	assert.Nil(t, handleMinIOError(nil, "op"))

	err := handleMinIOError(minio.ErrorResponse{Code: "NoSuchKey"}, "download_file")
	assert.True(t, IsNotFound(err))

	err = handleMinIOError(errors.New("dial tcp: refused"), "connect")
	assert.False(t, IsNotFound(err))
	var se *StorageError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeConnection, se.Code)
}
