// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	apperrors "qsrhire/internal/common/errors"
	"qsrhire/internal/models"
)

// jobCatalogSchema is the JSON Schema every external catalog file must
// satisfy before it replaces the built-in listing set.
const jobCatalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "restaurantName", "role", "payRate", "shiftTiming", "location"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "restaurantName": {"type": "string", "minLength": 1},
      "role": {"type": "string", "minLength": 1},
      "payRate": {"type": "string", "minLength": 1},
      "shiftTiming": {"type": "string", "minLength": 1},
      "location": {"type": "string", "minLength": 1},
      "logo": {"type": "string"}
    },
    "additionalProperties": false
  }
}`

// Validate checks raw catalog JSON against the schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(jobCatalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewCatalogInvalidError(err.Error())
	}
	if !result.Valid() {
		details := ""
		for i, desc := range result.Errors() {
			if i > 0 {
				details += "; "
			}
			details += desc.String()
		}
		return apperrors.NewCatalogInvalidError(details)
	}
	return nil
}

// Parse validates and decodes raw catalog JSON.
func Parse(data []byte) ([]models.JobListing, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var listings []models.JobListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, apperrors.NewCatalogInvalidError(err.Error())
	}
	if err := checkDuplicateIDs(listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Load reads, validates and decodes a catalog file.
func Load(path string) ([]models.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func checkDuplicateIDs(listings []models.JobListing) error {
	seen := make(map[string]bool, len(listings))
	for _, listing := range listings {
		if seen[listing.ID] {
			return apperrors.NewCatalogInvalidError(fmt.Sprintf("duplicate listing id: %s", listing.ID))
		}
		seen[listing.ID] = true
	}
	return nil
}
