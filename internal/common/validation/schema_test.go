package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/models"
)

func TestValidatePreferences(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantIssues bool
	}{
		{
			name: "valid document",
			raw: `{"userId":"user-1","generalPreferences":{"priceImportance":0.8},
				"categoryPreferences":{"job":{"desiredSkills":["go"]}}}`,
			wantIssues: false,
		},
		{
			name:       "missing userId",
			raw:        `{"categoryPreferences":{}}`,
			wantIssues: true,
		},
		{
			name:       "importance out of range",
			raw:        `{"userId":"user-1","generalPreferences":{"priceImportance":1.5}}`,
			wantIssues: true,
		},
		{
			name:       "weight override out of range",
			raw:        `{"userId":"user-1","weightPreferences":{"skills":2}}`,
			wantIssues: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := ValidatePreferences([]byte(tt.raw))
			require.NoError(t, err)
			if tt.wantIssues {
				assert.NotEmpty(t, issues)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestValidateListing(t *testing.T) {
	issues, err := ValidateListing(models.CategoryService,
		[]byte(`{"id":"svc-1","serviceType":"cleaning","price":100,"rating":4.5}`))
	require.NoError(t, err)
	assert.Empty(t, issues)

	issues, err = ValidateListing(models.CategoryService,
		[]byte(`{"id":"svc-2","rating":7}`))
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestValidateListing_MissingID(t *testing.T) {
	issues, err := ValidateListing(models.CategoryArt, []byte(`{"medium":"oil"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestValidateListing_MalformedJSON(t *testing.T) {
	_, err := ValidateListing(models.CategoryJob, []byte(`{not json`))
	assert.Error(t, err)
}
