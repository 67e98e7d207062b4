package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeapi/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "minio:9000", AccessKey: "ak", SecretKey: "sk", Bucket: "exports"}

	tests := []struct {
		name   string
		mutate func(*config.MinIOConfig)
		want   error
	}{
		{"missing endpoint", func(c *config.MinIOConfig) { c.Endpoint = "" }, ErrNoEndpoint},
		{"missing access key", func(c *config.MinIOConfig) { c.AccessKey = "" }, ErrNoCredentials},
		{"missing secret key", func(c *config.MinIOConfig) { c.SecretKey = "" }, ErrNoCredentials},
		{"missing bucket", func(c *config.MinIOConfig) { c.Bucket = "" }, ErrNoBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			store, err := NewMinIO(context.Background(), c)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, store)
		})
	}

	assert.NoError(t, validateMinIO(valid))
}

func TestExportKey(t *testing.T) {
	assert.Equal(t, "exports/5f1c.pdf", ExportKey("5f1c"))
}
