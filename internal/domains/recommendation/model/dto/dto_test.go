package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"workbrew/internal/domains/recommendation/model/dto"
	"workbrew/shared/validator"
)

func TestRecommendRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "typical coordinates",
			body:    `{"latitude": 6.5, "longitude": 3.37}`,
			wantErr: false,
		},
		{
			// the prime meridian crosses the catalog's own country
			name:    "zero longitude is a valid coordinate",
			body:    `{"latitude": 6.5, "longitude": 0}`,
			wantErr: false,
		},
		{
			name:    "zero latitude is a valid coordinate",
			body:    `{"latitude": 0, "longitude": 3.37}`,
			wantErr: false,
		},
		{
			name:    "missing latitude rejected",
			body:    `{"longitude": 3.37}`,
			wantErr: true,
		},
		{
			name:    "missing longitude rejected",
			body:    `{"latitude": 6.5}`,
			wantErr: true,
		},
		{
			name:    "latitude out of range rejected",
			body:    `{"latitude": 120, "longitude": 3.37}`,
			wantErr: true,
		},
		{
			name:    "longitude out of range rejected",
			body:    `{"latitude": 6.5, "longitude": 200}`,
			wantErr: true,
		},
		{
			name:    "limit above cap rejected",
			body:    `{"latitude": 6.5, "longitude": 3.37, "limit": 9}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.RecommendRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
