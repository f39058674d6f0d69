package s3_test

import (
	"testing"

	"conectapro/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		url    string
		want   string
	}{
		{name: "own domain", domain: "https://cdn.conectapro.pe", url: "https://cdn.conectapro.pe/services/svc-1/a.png", want: "services/svc-1/a.png"},
		{name: "trailing slash on domain", domain: "https://cdn.conectapro.pe/", url: "https://cdn.conectapro.pe/services/a.png", want: "services/a.png"},
		{name: "foreign url", domain: "https://cdn.conectapro.pe", url: "https://example.com/a.png", want: ""},
		{name: "no domain configured", domain: "", url: "https://cdn.conectapro.pe/a.png", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectKey(tt.domain, tt.url))
		})
	}
}
