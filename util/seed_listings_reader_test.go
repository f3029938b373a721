package util

import (
	"bytes"
	"strings"
	"testing"

	"roomshare-server/config"
	"roomshare-server/models"
)

func TestReadSeedListingsFromJSON(t *testing.T) {
	listings, err := ReadSeedListingsFromJSON(config.GetResourcePath(config.SEED_LISTINGS_RESOURCE))
	if err != nil {
		t.Fatal(err)
	}
	if len(listings) == 0 {
		t.Fatal("no seed listings loaded")
	}

	for _, l := range listings {
		if l.ID == "" || l.Title == "" || l.City == "" {
			t.Errorf("incomplete seed listing: %+v", l)
		}
		if l.Lat == 0 && l.Lng == 0 {
			t.Errorf("seed listing %s has no coordinates", l.ID)
		}
	}
}

func TestReadSeedListingsFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadSeedListingsFromJSON("does/not/exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRenderListingsPlot(t *testing.T) {
	listings := []models.ListingSummary{
		{Title: "Sunny loft", Lat: 37.76, Lng: -122.42},
	}
	bounds := models.Bounds{MinLat: 37, MaxLat: 38, MinLng: -123, MaxLng: -122}

	var buf bytes.Buffer
	if err := RenderListingsPlot(&buf, listings, bounds); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	if !strings.Contains(html, "Listings Map") {
		t.Error("rendered HTML missing page title")
	}
}
