package playwrights

import (
	"reflect"
	"testing"

	"callboard/internal/models"
	"callboard/internal/schema"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		show models.Show
		want *schema.PlaywrightShow
	}{
		{
			name: "named playwright",
			show: models.Show{Playwright: "William Shakespeare"},
			want: &schema.PlaywrightShow{
				Playwright: schema.Playwright{ID: "william_shakespeare", Name: "William Shakespeare"},
				Type:       schema.PlaywrightTypePlaywright,
				Descriptor: "by William Shakespeare",
			},
		},
		{
			name: "student written links person",
			show: models.Show{Playwright: "Fred Bloggs", StudentWritten: true},
			want: &schema.PlaywrightShow{
				Playwright: schema.Playwright{
					ID:       "fred_bloggs",
					Name:     "Fred Bloggs",
					PersonID: "fred_bloggs",
				},
				Type:           schema.PlaywrightTypePlaywright,
				Descriptor:     "by Fred Bloggs",
				StudentWritten: true,
			},
		},
		{
			name: "unknown",
			show: models.Show{Playwright: "unknown"},
			want: &schema.PlaywrightShow{
				Type:       schema.PlaywrightTypeUnknown,
				Descriptor: "Unknown",
			},
		},
		{
			name: "various",
			show: models.Show{Playwright: "Various"},
			want: &schema.PlaywrightShow{
				Type:       schema.PlaywrightTypeVarious,
				Descriptor: "Various Writers",
			},
		},
		{
			name: "devised flag",
			show: models.Show{Devised: models.Devised{Flag: true}},
			want: &schema.PlaywrightShow{
				Type:       schema.PlaywrightTypeDevised,
				Descriptor: "Devised",
			},
		},
		{
			name: "devised by name",
			show: models.Show{Devised: models.Devised{By: "Someone"}},
			want: &schema.PlaywrightShow{
				Type:       schema.PlaywrightTypeDevised,
				Descriptor: "Devised by Someone",
			},
		},
		{
			name: "devised student written",
			show: models.Show{Devised: models.Devised{By: "Cast"}, StudentWritten: true},
			want: &schema.PlaywrightShow{
				Type:           schema.PlaywrightTypeDevised,
				Descriptor:     "Devised by Cast",
				StudentWritten: true,
			},
		},
		{
			name: "improvised",
			show: models.Show{Improvised: true},
			want: &schema.PlaywrightShow{
				Type:       schema.PlaywrightTypeImprovised,
				Descriptor: "Improvised",
			},
		},
		{
			name: "devised wins over playwright text",
			show: models.Show{Playwright: "Various", Devised: models.Devised{Flag: true}},
			want: &schema.PlaywrightShow{
				Type:       schema.PlaywrightTypeDevised,
				Descriptor: "Devised",
			},
		},
		{
			name: "no writing credit",
			show: models.Show{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.show)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlayID(t *testing.T) {
	if got := PlayID("The Merchant of Venice"); got != "the_merchant_of_venice" {
		t.Errorf("PlayID = %q", got)
	}
}
