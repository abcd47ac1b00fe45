package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"localhost with port", "localhost:8080", "localhost", 8080, false},
		{"ip with port", "127.0.0.1:9090", "127.0.0.1", 9090, false},
		{"empty host", ":8080", "", 8080, false},
		{"missing port", "localhost", "", 0, true},
		{"non-numeric port", "localhost:abc", "", 0, true},
		{"negative port", "localhost:-1", "", 0, true},
		{"bad ip", "not-an-ip:8080", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}
