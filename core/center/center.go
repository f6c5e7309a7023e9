package center

import (
	"regexp"
	"strings"
)

type CityCode string

const (
	CityMouda  CityCode = "MDA"
	CityNagpur CityCode = "NGP"
)

var Cities = map[CityCode]string{
	CityMouda:  "Mouda",
	CityNagpur: "Nagpur",
}

type Center struct {
	ID        string   `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	CityCode  CityCode `json:"cityCode" bson:"cityCode"`
	ShortCode string   `json:"shortCode" bson:"shortCode"`
}

// Catalog is the static center configuration, loaded at startup and immutable.
var Catalog = []Center{
	// Mouda centers
	{ID: "MDA01", Name: "Nathnagar", CityCode: CityMouda, ShortCode: "NAT"},
	{ID: "MDA02", Name: "Gurdeo Chowk", CityCode: CityMouda, ShortCode: "GUR"},
	{ID: "MDA03", Name: "Krishna Mandir", CityCode: CityMouda, ShortCode: "KRI"},
	{ID: "MDA04", Name: "Dahali", CityCode: CityMouda, ShortCode: "DAH"},
	{ID: "MDA05", Name: "Kumbhari", CityCode: CityMouda, ShortCode: "KUM"},
	{ID: "MDA06", Name: "Rahadi", CityCode: CityMouda, ShortCode: "RAH"},
	{ID: "MDA07", Name: "Lapka", CityCode: CityMouda, ShortCode: "LAP"},
	{ID: "MDA08", Name: "Mathani", CityCode: CityMouda, ShortCode: "MAT"},
	{ID: "MDA09", Name: "Wadoda", CityCode: CityMouda, ShortCode: "WAD"},
	{ID: "MDA10", Name: "Isapur", CityCode: CityMouda, ShortCode: "ISA"},

	// Nagpur centers
	{ID: "NGP01", Name: "SitaBuldi Footpathshala", CityCode: CityNagpur, ShortCode: "SBF"},
	{ID: "NGP02", Name: "Wardhaman Nagar SDC", CityCode: CityNagpur, ShortCode: "WNS"},
	{ID: "NGP03", Name: "IT Park", CityCode: CityNagpur, ShortCode: "ITP"},
	{ID: "NGP04", Name: "Laxmi Nagar", CityCode: CityNagpur, ShortCode: "LAX"},
	{ID: "NGP05", Name: "Sakkardara SDC", CityCode: CityNagpur, ShortCode: "SDS"},
	{ID: "NGP06", Name: "Jagdish Nagar", CityCode: CityNagpur, ShortCode: "JAG"},
	{ID: "NGP07", Name: "Sakkardara Square", CityCode: CityNagpur, ShortCode: "SKS"},
	{ID: "NGP08", Name: "Mount Road", CityCode: CityNagpur, ShortCode: "MTR"},
	{ID: "NGP09", Name: "Wardhaman Nagar", CityCode: CityNagpur, ShortCode: "WN"},
	{ID: "NGP10", Name: "Gandhinagar", CityCode: CityNagpur, ShortCode: "GAN"},
}

var cityCodeRegex = regexp.MustCompile(`(MDA|NGP)`)

// ExtractCityCode scans the uppercased id for a known city code anywhere in
// the string and returns the first match.
func ExtractCityCode(id string) (CityCode, bool) {
	match := cityCodeRegex.FindString(strings.ToUpper(id))
	if match == "" {
		return "", false
	}
	return CityCode(match), true
}

// ForCity returns all catalog centers belonging to the given city.
// An empty result must be treated as a hard error by login flows: no volunteer
// can operate without a center.
func ForCity(code CityCode) []Center {
	var centers []Center
	for _, c := range Catalog {
		if c.CityCode == code {
			centers = append(centers, c)
		}
	}
	return centers
}

// Get returns the catalog center with the given id.
func Get(id string) (Center, bool) {
	for _, c := range Catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Center{}, false
}
