package handler

import "testing"

func TestMovieFormParse(t *testing.T) {
	tests := []struct {
		name    string
		form    movieForm
		wantErr bool
	}{
		{"valid", movieForm{"Heat", "Crime drama", "1995", "Crime", "8.3"}, false},
		{"valid integer rating", movieForm{"Heat", "d", "1995", "Crime", "8"}, false},
		{"missing name", movieForm{"", "d", "1995", "Crime", "8.3"}, true},
		{"missing description", movieForm{"Heat", "", "1995", "Crime", "8.3"}, true},
		{"year not numeric", movieForm{"Heat", "d", "ninety-five", "Crime", "8.3"}, true},
		{"year fractional", movieForm{"Heat", "d", "19.95", "Crime", "8.3"}, true},
		{"negative year", movieForm{"Heat", "d", "-1", "Crime", "8.3"}, true},
		{"rating not numeric", movieForm{"Heat", "d", "1995", "Crime", "great"}, true},
		{"negative rating", movieForm{"Heat", "d", "1995", "Crime", "-2"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := tt.form.parse()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if fields.Year != 1995 {
				t.Fatalf("year = %d, want 1995", fields.Year)
			}
		})
	}
}
