package server_test

import (
	"testing"

	"csv-comparison/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_AllowsSource(t *testing.T) {
	tests := []struct {
		name   string
		root   string
		source string
		want   bool
	}{
		{"Object storage", "/data", "s3://bucket/file.csv", true},
		{"Inside root", "/data", "/data/in/file.csv", true},
		{"Relative inside root", "/data", "/data/in/../file.csv", true},
		{"Outside root", "/data", "/etc/passwd", false},
		{"Escapes root", "/data", "/data/../etc/passwd", false},
		{"Sibling prefix", "/data", "/database/file.csv", false},
		{"No root", "", "/anywhere/file.csv", true},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{SourceRoot: tt.root}
			assert.Equal(t, tt.want, c.AllowsSource(tt.source))
		})
	}
}
