package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	svc := &s3Impl{
		bucket:       "saapadu",
		publicDomain: "https://cdn.saapadu.in",
		apiEndpoint:  "https://r2.example.com",
	}

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "public url",
			url:      "https://cdn.saapadu.in/hotels/a1.png",
			expected: "hotels/a1.png",
		},
		{
			name:     "path style api url",
			url:      "https://r2.example.com/saapadu/hotels/a1.png",
			expected: "hotels/a1.png",
		},
		{
			name:     "other bucket on the api endpoint",
			url:      "https://r2.example.com/other/hotels/a1.png",
			expected: "",
		},
		{
			name:     "foreign url",
			url:      "https://images.example.com/dosa.jpg",
			expected: "",
		},
		{
			name:     "placeholder",
			url:      "🍲",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.objectKey(tt.url))
		})
	}
}

func TestObjectKey_NoPublicDomain(t *testing.T) {
	svc := &s3Impl{bucket: "saapadu"}

	assert.Empty(t, svc.objectKey("/hotels/a1.png"))
	assert.Empty(t, svc.objectKey("hotels/a1.png"))
}
