package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{name: "PathOnly", cfg: Config{DatabasePath: "./db.sqlite"}},
		{name: "EphemeralOnly", cfg: Config{Ephemeral: true}},
		{name: "Neither", cfg: Config{}, expectErr: true},
		{name: "Both", cfg: Config{DatabasePath: "./db.sqlite", Ephemeral: true}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.cfg)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
