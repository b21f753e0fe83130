package server_test

import (
	"testing"

	"furnidata-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"PortOnly", "8080", ":8080"},
		{"HostAndPort", "127.0.0.1:9000", "127.0.0.1:9000"},
		{"LeadingColon", ":3000", ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Addr())
		})
	}
}

func TestConfig_AuthEnabled(t *testing.T) {
	assert.False(t, server.Config{}.AuthEnabled())
	assert.True(t, server.Config{ApiKey: "secret"}.AuthEnabled())
}
