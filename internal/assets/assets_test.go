package assets

import (
	"testing"

	"callboard/internal/models"
)

func TestPrimaryImagePreference(t *testing.T) {
	tests := []struct {
		name string
		list []models.Asset
		want string
	}{
		{
			name: "no assets",
			list: nil,
			want: "",
		},
		{
			name: "no image assets",
			list: []models.Asset{{Type: "programme", Filename: "prog.pdf", Title: "Programme"}},
			want: "",
		},
		{
			name: "poster beats flyer",
			list: []models.Asset{
				{Type: "flyer", Image: "flyer-1"},
				{Type: "poster", Image: "poster-1"},
			},
			want: "poster-1",
		},
		{
			name: "flyer beats programme",
			list: []models.Asset{
				{Type: "programme", Image: "prog-1"},
				{Type: "flyer", Image: "flyer-1"},
			},
			want: "flyer-1",
		},
		{
			name: "display image overrides type order",
			list: []models.Asset{
				{Type: "poster", Image: "poster-1"},
				{Type: "programme", Image: "prog-1", DisplayImage: true},
			},
			want: "prog-1",
		},
		{
			name: "type match is case insensitive",
			list: []models.Asset{{Type: "Poster", Image: "poster-1"}},
			want: "poster-1",
		},
		{
			name: "unranked types are skipped",
			list: []models.Asset{{Type: "backstage", Image: "candid-1"}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrimaryImage(tt.list); got != tt.want {
				t.Errorf("PrimaryImage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertPreservesFields(t *testing.T) {
	page := 4
	got := Convert([]models.Asset{{
		Type:     "programme",
		Filename: "prog.pdf",
		Title:    "Programme",
		Page:     &page,
	}})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Filename != "prog.pdf" || got[0].Page == nil || *got[0].Page != 4 {
		t.Errorf("converted asset = %+v", got[0])
	}
}
