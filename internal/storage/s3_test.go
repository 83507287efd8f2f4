package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL(t *testing.T) {
	// Explicit public base URL wins
	assert.Equal(t, "https://cdn.example.com",
		resolveBaseURL(S3Config{PublicBaseURL: "https://cdn.example.com/", Endpoint: "http://127.0.0.1:9000", Bucket: "gutcheck"}))

	// Custom endpoint (MinIO-style) uses path-style bucket addressing
	assert.Equal(t, "http://127.0.0.1:9000/gutcheck",
		resolveBaseURL(S3Config{Endpoint: "http://127.0.0.1:9000/", Bucket: "gutcheck"}))

	// Plain AWS falls back to the regional virtual-hosted address
	assert.Equal(t, "https://gutcheck.s3.us-east-1.amazonaws.com",
		resolveBaseURL(S3Config{Bucket: "gutcheck", Region: "us-east-1"}))
}
