// Package validation checks incoming listing and preference payloads against
// JSON schemas. Validation is advisory: the engine scores whatever it is
// given, so callers log the issues and continue.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"match-engine/internal/models"
)

// preferencesSchema covers the envelope; category records are open objects
// because each scorer tolerates absent fields.
const preferencesSchema = `{
	"type": "object",
	"required": ["userId"],
	"properties": {
		"userId": {"type": "string", "minLength": 1},
		"generalPreferences": {
			"type": "object",
			"properties": {
				"priceImportance": {"type": "number", "minimum": 0, "maximum": 1},
				"locationImportance": {"type": "number", "minimum": 0, "maximum": 1},
				"qualityImportance": {"type": "number", "minimum": 0, "maximum": 1}
			}
		},
		"categoryPreferences": {"type": "object"},
		"weightPreferences": {
			"type": "object",
			"additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
		}
	}
}`

const listingBaseSchema = `{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"subcategory": {"type": "string"},
		"title": {"type": "string"}
	}
}`

// listingFieldSchemas adds per-category numeric sanity checks on top of the
// base listing shape.
var listingFieldSchemas = map[models.Category]string{
	models.CategoryJob: `{
		"type": "object",
		"properties": {
			"salaryMin": {"type": "number", "minimum": 0},
			"salaryMax": {"type": "number", "minimum": 0},
			"skills": {"type": "array", "items": {"type": "string"}}
		}
	}`,
	models.CategoryRental: `{
		"type": "object",
		"properties": {
			"price": {"type": "number", "minimum": 0},
			"durationMonths": {"type": "number", "minimum": 0}
		}
	}`,
	models.CategoryService: `{
		"type": "object",
		"properties": {
			"price": {"type": "number", "minimum": 0},
			"distanceKm": {"type": "number", "minimum": 0},
			"rating": {"type": "number", "minimum": 0, "maximum": 5}
		}
	}`,
	models.CategoryMarketplace: `{
		"type": "object",
		"properties": {
			"price": {"type": "number", "minimum": 0},
			"distanceKm": {"type": "number", "minimum": 0}
		}
	}`,
	models.CategoryHoliday: `{
		"type": "object",
		"properties": {
			"price": {"type": "number", "minimum": 0},
			"durationDays": {"type": "number", "minimum": 0}
		}
	}`,
	models.CategoryLearning: `{
		"type": "object",
		"properties": {
			"price": {"type": "number", "minimum": 0}
		}
	}`,
	models.CategoryCommunity: `{
		"type": "object",
		"properties": {
			"distanceKm": {"type": "number", "minimum": 0},
			"groupSize": {"type": "number", "minimum": 0}
		}
	}`,
}

// ValidatePreferences reports schema issues in a raw preferences document.
func ValidatePreferences(raw []byte) ([]string, error) {
	return validate(preferencesSchema, raw)
}

// ValidateListing reports schema issues in a raw listing document for the
// given category. Categories without extra field rules only get the base
// shape check.
func ValidateListing(category models.Category, raw []byte) ([]string, error) {
	issues, err := validate(listingBaseSchema, raw)
	if err != nil {
		return nil, err
	}

	if fieldSchema, ok := listingFieldSchemas[category]; ok {
		fieldIssues, err := validate(fieldSchema, raw)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fieldIssues...)
	}
	return issues, nil
}

func validate(schema string, raw []byte) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, e.String())
	}
	return issues, nil
}
