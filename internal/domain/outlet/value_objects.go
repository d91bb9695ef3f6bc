package outlet

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCity     = errors.New("invalid city")
	ErrInvalidSiteCode = errors.New("invalid site code")
)

// City is one of the cities the service operates in.
type City string

const (
	CityBreda    City = "breda"
	CityTilburg  City = "tilburg"
	CityDenBosch City = "den_bosch"
)

func NewCity(s string) (City, error) {
	switch City(strings.ToLower(strings.TrimSpace(s))) {
	case CityBreda:
		return CityBreda, nil
	case CityTilburg:
		return CityTilburg, nil
	case CityDenBosch:
		return CityDenBosch, nil
	default:
		return "", ErrInvalidCity
	}
}

func (c City) String() string {
	return string(c)
}

// SiteCode identifies a building within a city (e.g. "LA", "TA").
type SiteCode string

func NewSiteCode(s string) (SiteCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || len(s) > 8 {
		return "", ErrInvalidSiteCode
	}
	return SiteCode(s), nil
}

func (s SiteCode) String() string {
	return string(s)
}
