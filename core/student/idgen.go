package student

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/maitrya143/pravah/core/center"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// GenerateID builds a student id from the two-digit year, the center's city
// code and short code, and a uniformly random 3-digit suffix in [100, 999],
// e.g. "25NGPSBF177". The id is permanent and is the payload encoded into the
// student's QR code.
//
// No uniqueness check is performed against existing students: the ~1-in-900
// collision chance per center per year is an accepted risk of the id scheme.
func GenerateID(c center.Center, now time.Time) string {
	yy := now.Format("06")
	suffix := 100 + rand.Intn(900)
	return fmt.Sprintf("%s%s%s%d", yy, c.CityCode, c.ShortCode, suffix)
}
