package server_test

import (
	"testing"

	"ipo-tracker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"Development", server.EnvDevelopment, true},
		{"Staging", server.EnvStaging, true},
		{"Production", server.EnvProduction, true},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Environment: tt.env}
			assert.Equal(t, tt.want, c.IsValidEnvironment())
		})
	}
}

func TestConfig_RequiresApiKey(t *testing.T) {
	assert.False(t, server.Config{Environment: server.EnvDevelopment}.RequiresApiKey())
	assert.True(t, server.Config{Environment: server.EnvDevelopment, ApiKey: "k"}.RequiresApiKey())
	assert.True(t, server.Config{Environment: server.EnvProduction}.RequiresApiKey())
}
