package utils

import "testing"

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"1930", 1930, false},
		{" 2018 ", 2018, false},
		{"19x0", 0, true},
		{"1930.5", 0, true},
		{"-4", 0, true},
		{"0", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseYear(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseYear(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPathParam(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/api/v1/wins/Brazil", "Brazil", true},
		{"/api/v1/wins/United Kingdom", "United Kingdom", true},
		{"/api/v1/wins/100%", "100%", true},
		{"/api/v1/wins/a%2Fb", "a%2Fb", true},
		{"/api/v1/wins/", "", false},
		{"/api/v1/wins/a/b", "", false},
		{"/other/Brazil", "", false},
	}
	for _, tt := range tests {
		got, ok := PathParam(tt.path, "/api/v1/wins/")
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("PathParam(%q) = %q,%v want %q,%v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}
