package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidMemberNumber = errors.New("invalid member number")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrPasswordTooWeak     = errors.New("password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// MemberNumber is the unique student/member identifier issued by the
// institution, e.g. "2182736".
type MemberNumber struct {
	value string
}

var memberNumberRegex = regexp.MustCompile(`^[0-9A-Za-z]{4,16}$`)

func NewMemberNumber(s string) (MemberNumber, error) {
	s = strings.TrimSpace(s)
	if !memberNumberRegex.MatchString(s) {
		return MemberNumber{}, ErrInvalidMemberNumber
	}
	return MemberNumber{value: s}, nil
}

func (m MemberNumber) Value() string {
	return m.value
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9 \-]{6,20}$`)

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Role string

const (
	// RoleMember reserves packages.
	RoleMember Role = "member"
	// RoleStaff publishes and manages packages for an outlet.
	RoleStaff Role = "staff"
)

func NewRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleMember:
		return RoleMember, nil
	case RoleStaff:
		return RoleStaff, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
