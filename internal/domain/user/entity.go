package user

import (
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// minRegistrationAge is the youngest age at which an account may be created.
	minRegistrationAge = 16
	// maxNoShows is the highest no-show count that still permits reserving.
	maxNoShows = 2
)

// Stable registration reasons, shown to the user verbatim.
var (
	ErrTooYoung          = errs.New("you must be at least 16 years old to register")
	ErrBirthDateInFuture = errs.New("birth date cannot be in the future")
)

// User is a reservation-side account. Staff accounts share the type but
// never accrue reservation standing.
type User struct {
	id           uuid.UUID
	memberNumber MemberNumber
	name         string
	email        Email
	passwordHash string
	role         Role
	birthDate    time.Time
	phone        Phone
	studyCity    outlet.City
	noShowCount  int32
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser validates the age rules at registration time. Check order decides
// the reason reported when several rules are violated at once.
func NewUser(
	memberNumber MemberNumber,
	name string,
	email Email,
	passwordHash string,
	role Role,
	birthDate time.Time,
	phone Phone,
	studyCity outlet.City,
	now time.Time,
) (*User, error) {
	if ageAt(birthDate, now) < minRegistrationAge {
		return nil, ErrTooYoung
	}
	if birthDate.After(now) {
		return nil, ErrBirthDateInFuture
	}

	return &User{
		id:           uuid.New(),
		memberNumber: memberNumber,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		birthDate:    birthDate,
		phone:        phone,
		studyCity:    studyCity,
		noShowCount:  0,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	memberNumber MemberNumber,
	name string,
	email Email,
	passwordHash string,
	role Role,
	birthDate time.Time,
	phone Phone,
	studyCity outlet.City,
	noShowCount int32,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		memberNumber: memberNumber,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		birthDate:    birthDate,
		phone:        phone,
		studyCity:    studyCity,
		noShowCount:  noShowCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) MemberNumber() MemberNumber { return u.memberNumber }
func (u *User) Name() string               { return u.name }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) Role() Role                 { return u.role }
func (u *User) BirthDate() time.Time       { return u.birthDate }
func (u *User) Phone() Phone               { return u.phone }
func (u *User) StudyCity() outlet.City     { return u.studyCity }
func (u *User) NoShowCount() int32         { return u.noShowCount }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }

// AgeAt computes the calendar age at the reference time: year difference,
// minus one when the birthday has not yet occurred in the reference year.
func (u *User) AgeAt(ref time.Time) int {
	return ageAt(u.birthDate, ref)
}

// IsAdultAt reports whether the user is 18 or older at the reference time.
// Someone born exactly 18 years before ref counts as adult.
func (u *User) IsAdultAt(ref time.Time) bool {
	return u.AgeAt(ref) >= 18
}

// CanReserve reports whether the accumulated no-show count still permits
// reservations. The counter value 2 permits; 3 blocks.
func (u *User) CanReserve() bool {
	return u.noShowCount <= maxNoShows
}

// RegisterNoShow bumps the standing counter. It is never decremented.
func (u *User) RegisterNoShow() {
	u.noShowCount++
}

func ageAt(birthDate, ref time.Time) int {
	age := ref.Year() - birthDate.Year()
	birthday := truncateToDate(birthDate)
	if birthday.After(truncateToDate(ref).AddDate(-age, 0, 0)) {
		age--
	}
	return age
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
