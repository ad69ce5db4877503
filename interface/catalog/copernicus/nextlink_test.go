package copernicus

import "testing"

func TestStripCountParam(t *testing.T) {
	base := "https://catalogue.dataspace.copernicus.eu/odata/v1/Products"
	tests := []struct {
		in, expected string
	}{
		{base + "?$filter=x&$count=true&$top=10", base + "?$filter=x&$top=10"},
		{base + "?$filter=x&$top=10&$count=true", base + "?$filter=x&$top=10"},
		{base + "?$count=true&$filter=x&$top=10", base + "?$filter=x&$top=10"},
		{base + "?$count=true", base},
		{base + "?$filter=x&%24count=true&$top=10", base + "?$filter=x&$top=10"},
		{base + "?%24count=true&%24top=10&%24skip=20", base + "?%24top=10&%24skip=20"},
		{base + "?$filter=x&$count=true&$skip=10&$count=true", base + "?$filter=x&$skip=10&$count=true"},
		{base + "?$filter=x&$top=10", base + "?$filter=x&$top=10"},
		{base + "?$filter=x&$count=false", base + "?$filter=x&$count=false"},
		{base, base},
	}
	for _, tt := range tests {
		if out := StripCountParam(tt.in); out != tt.expected {
			t.Errorf("StripCountParam(%s): expected %s, got %s", tt.in, tt.expected, out)
		}
	}
}

func TestPathEscape(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"Collection/Name eq 'SENTINEL-2'", "Collection/Name%20eq%20%27SENTINEL-2%27"},
		{"contains(Name,'S2A_MSI')", "contains%28Name%2C%27S2A_MSI%27%29"},
		{"a~b.c", "a~b.c"},
		{"SRID=4326;POLYGON((1 2))", "SRID%3D4326%3BPOLYGON%28%281%202%29%29"},
		{"é", "%C3%A9"},
	}
	for _, tt := range tests {
		if out := pathEscape(tt.in); out != tt.expected {
			t.Errorf("pathEscape(%s): expected %s, got %s", tt.in, tt.expected, out)
		}
	}
}
