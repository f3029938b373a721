package util

import (
	"encoding/json"
	"fmt"
	"os"

	"roomshare-server/models"
)

// ReadSeedListingsFromJSON loads the development seed listings from JSON
// on disk.
func ReadSeedListingsFromJSON(filePath string) ([]models.Listing, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed listings: %w", err)
	}
	return listings, nil
}
