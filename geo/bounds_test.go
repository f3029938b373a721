package geo

import (
	"math"
	"testing"

	"roomshare-server/config"
	"roomshare-server/models"
)

func TestClampBounds_OversizedSpans(t *testing.T) {
	cfg := config.DefaultSearch()

	tests := []struct {
		name string
		in   models.Bounds
	}{
		{
			name: "both spans oversized",
			in:   models.Bounds{MinLat: 28, MaxLat: 43, MinLng: -135, MaxLng: -120},
		},
		{
			name: "lat only oversized",
			in:   models.Bounds{MinLat: 10, MaxLat: 40, MinLng: -122, MaxLng: -118},
		},
		{
			name: "world view",
			in:   models.Bounds{MinLat: -80, MaxLat: 80, MinLng: -179, MaxLng: 179},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := ClampBounds(test.in, cfg.MaxLatSpan, cfg.MaxLngSpan)

			if out.LatSpan() > cfg.MaxLatSpan+1e-9 {
				t.Errorf("lat span %f exceeds max %f", out.LatSpan(), cfg.MaxLatSpan)
			}
			if out.LngSpan() > cfg.MaxLngSpan+1e-9 {
				t.Errorf("lng span %f exceeds max %f", out.LngSpan(), cfg.MaxLngSpan)
			}

			wantLat, wantLng := test.in.Center()
			gotLat, gotLng := out.Center()
			if math.Abs(gotLat-wantLat) > 1e-9 {
				t.Errorf("lat center moved: got %f, want %f", gotLat, wantLat)
			}
			if math.Abs(gotLng-wantLng) > 1e-9 {
				t.Errorf("lng center moved: got %f, want %f", gotLng, wantLng)
			}
		})
	}
}

func TestClampBounds_WithinLimitsUntouched(t *testing.T) {
	cfg := config.DefaultSearch()
	in := models.Bounds{MinLat: 37, MaxLat: 38, MinLng: -123, MaxLng: -122}

	out := ClampBounds(in, cfg.MaxLatSpan, cfg.MaxLngSpan)
	if out != in {
		t.Errorf("expected bounds unchanged, got %+v", out)
	}
}

func TestClampBounds_AntimeridianWrap(t *testing.T) {
	cfg := config.DefaultSearch()
	// 30 degrees of longitude across the antimeridian.
	in := models.Bounds{MinLat: 10, MaxLat: 15, MinLng: 165, MaxLng: -165}

	out := ClampBounds(in, cfg.MaxLatSpan, cfg.MaxLngSpan)
	if out.LngSpan() > cfg.MaxLngSpan+1e-9 {
		t.Errorf("lng span %f exceeds max %f", out.LngSpan(), cfg.MaxLngSpan)
	}
	// Center sits on the antimeridian; the clamped box must still wrap.
	if out.MinLng <= out.MaxLng {
		t.Errorf("expected clamped box to keep wrapping, got %+v", out)
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := config.DefaultSearch()

	tests := []struct {
		name    string
		in      models.Bounds
		wantErr bool
	}{
		{
			name: "valid box",
			in:   models.Bounds{MinLat: 37, MaxLat: 38, MinLng: -123, MaxLng: -122},
		},
		{
			name: "antimeridian wrap is valid",
			in:   models.Bounds{MinLat: 10, MaxLat: 15, MinLng: 170, MaxLng: -170},
		},
		{
			name:    "latitude below cutoff",
			in:      models.Bounds{MinLat: -88, MaxLat: -80, MinLng: 0, MaxLng: 10},
			wantErr: true,
		},
		{
			name:    "inverted latitude",
			in:      models.Bounds{MinLat: 40, MaxLat: 30, MinLng: 0, MaxLng: 10},
			wantErr: true,
		},
		{
			name:    "equal latitudes",
			in:      models.Bounds{MinLat: 30, MaxLat: 30, MinLng: 0, MaxLng: 10},
			wantErr: true,
		},
		{
			name:    "NaN coordinate",
			in:      models.Bounds{MinLat: math.NaN(), MaxLat: 30, MinLng: 0, MaxLng: 10},
			wantErr: true,
		},
		{
			name:    "infinite coordinate",
			in:      models.Bounds{MinLat: 10, MaxLat: 30, MinLng: math.Inf(1), MaxLng: 10},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateBounds(test.in, cfg)
			if test.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !test.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
