package services

import (
	"reflect"
	"testing"

	"solarops-backend/models"
)

func TestClientUpsertColumns(t *testing.T) {
	cases := []struct {
		name     string
		phone    string
		location string
		want     []string
	}{
		{"both set", "11999990000", "Rua A 123", []string{"phone", "location"}},
		{"phoneless job keeps stored phone", "", "Rua A 123", []string{"location"}},
		{"location only empty", "11999990000", "", []string{"phone"}},
		{"nothing to overwrite", "", "", nil},
	}
	for _, tc := range cases {
		if got := clientUpsertColumns(tc.phone, tc.location); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: clientUpsertColumns(%q, %q) = %v, want %v",
				tc.name, tc.phone, tc.location, got, tc.want)
		}
	}
}

func TestDefaultList(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{models.SettingServices, 3},
		{models.SettingSalespeople, 2},
		{models.SettingTeams, 2},
		{"unknown", 0},
	}
	for _, tc := range cases {
		if got := len(DefaultList(tc.key)); got != tc.want {
			t.Errorf("DefaultList(%q) has %d items, want %d", tc.key, got, tc.want)
		}
	}
}
