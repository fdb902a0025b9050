package services_test

import (
	"testing"

	"phonebook/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "dashes stripped", raw: "123-456-7890", want: "1234567890"},
		{name: "spaces and parens stripped", raw: "(555) 123 4567", want: "5551234567"},
		{name: "leading plus kept", raw: "+1 555-123-4567", want: "+15551234567"},
		{name: "already normalized", raw: "+15551234567", want: "+15551234567"},
		{name: "letters rejected", raw: "abc", wantErr: true},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "leading zero rejected", raw: "0123456", wantErr: true},
		{name: "too short rejected", raw: "5", wantErr: true},
		{name: "too long rejected", raw: "1234567890123456", wantErr: true},
		{name: "plus only rejected", raw: "+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, services.ErrInvalidPhoneFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
