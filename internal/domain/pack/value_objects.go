package pack

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidName     = errors.New("package name is required")
	ErrInvalidPrice    = errors.New("price must be between 0.01 and 1000.00")
)

// MealType categorizes a package's contents.
type MealType string

const (
	MealTypeBread     MealType = "bread"
	MealTypeDrink     MealType = "drink"
	MealTypeHotDinner MealType = "hot_dinner"
)

func NewMealType(s string) (MealType, error) {
	switch MealType(strings.ToLower(strings.TrimSpace(s))) {
	case MealTypeBread:
		return MealTypeBread, nil
	case MealTypeDrink:
		return MealTypeDrink, nil
	case MealTypeHotDinner:
		return MealTypeHotDinner, nil
	default:
		return "", ErrInvalidMealType
	}
}

func (m MealType) String() string {
	return string(m)
}

// RequiresHotMealService reports whether only outlets with hot-meal
// capability may offer this meal type.
func (m MealType) RequiresHotMealService() bool {
	return m == MealTypeHotDinner
}

// Name is a package display name, at most 100 characters.
type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

// Price in euro cents.
type Price struct {
	cents int32
}

func NewPrice(cents int32) (Price, error) {
	if cents < 1 || cents > 100000 {
		return Price{}, ErrInvalidPrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int32 {
	return p.cents
}

func (p Price) Euros() float64 {
	return float64(p.cents) / 100.0
}
