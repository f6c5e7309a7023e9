package center

import "testing"

func Test_ExtractCityCode(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode CityCode
		wantOK   bool
	}{
		{"lowercase mouda id", "25mda177", CityMouda, true},
		{"uppercase mouda id", "25MDA177", CityMouda, true},
		{"nagpur id with suffix", "NGPWN101", CityNagpur, true},
		{"code in the middle", "xxNGPxx", CityNagpur, true},
		{"code at the end", "25177mda", CityMouda, true},
		{"no city code", "25XYZ001", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ExtractCityCode(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("ExtractCityCode(%q) ok = %v; want %v", tt.id, ok, tt.wantOK)
			}
			if code != tt.wantCode {
				t.Errorf("ExtractCityCode(%q) = %q; want %q", tt.id, code, tt.wantCode)
			}
		})
	}
}

func Test_ForCity(t *testing.T) {
	for _, code := range []CityCode{CityMouda, CityNagpur} {
		centers := ForCity(code)
		if len(centers) != 10 {
			t.Errorf("ForCity(%q) returned %d centers; want 10", code, len(centers))
		}
		for _, c := range centers {
			if c.CityCode != code {
				t.Errorf("ForCity(%q) returned center %q of city %q", code, c.ID, c.CityCode)
			}
		}
	}

	if centers := ForCity("XYZ"); len(centers) != 0 {
		t.Errorf("ForCity(XYZ) returned %d centers; want none", len(centers))
	}
}

func Test_Get(t *testing.T) {
	c, ok := Get("NGP01")
	if !ok {
		t.Fatal("Get(NGP01) not found")
	}
	if c.Name != "SitaBuldi Footpathshala" || c.ShortCode != "SBF" {
		t.Errorf("Get(NGP01) = %+v", c)
	}

	if _, ok := Get("NGP99"); ok {
		t.Error("Get(NGP99) found; want not found")
	}
}
