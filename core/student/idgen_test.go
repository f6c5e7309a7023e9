package student

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/maitrya143/pravah/core/center"
)

func Test_GenerateID(t *testing.T) {
	c, _ := center.Get("NGP01") // SitaBuldi Footpathshala, short code SBF
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^25NGPSBF\d{3}$`)
	for i := 0; i < 200; i++ {
		id := GenerateID(c, now)
		if !pattern.MatchString(id) {
			t.Fatalf("GenerateID() = %q; want match for %s", id, pattern)
		}
		suffix, err := strconv.Atoi(id[len(id)-3:])
		if err != nil {
			t.Fatalf("GenerateID() suffix not numeric: %q", id)
		}
		if suffix < 100 || suffix > 999 {
			t.Fatalf("GenerateID() suffix %d out of [100, 999]", suffix)
		}
	}
}

func Test_GenerateID_mouda(t *testing.T) {
	c, _ := center.Get("MDA05") // Kumbhari, short code KUM
	now := time.Date(2026, time.January, 2, 8, 30, 0, 0, time.UTC)

	id := GenerateID(c, now)
	if matched := regexp.MustCompile(`^26MDAKUM\d{3}$`).MatchString(id); !matched {
		t.Errorf("GenerateID() = %q; want 26MDAKUM###", id)
	}
}
