//go:build unit || e2e

package builder

import (
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	MemberNumber string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	BirthDate    time.Time
	Phone        string
	StudyCity    string
	NoShowCount  int32
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &UserBuilder{
		MemberNumber: "AB1234",
		Name:         "Test Member",
		Email:        "member@example.com",
		PasswordHash: "hashed_password",
		Role:         "member",
		BirthDate:    time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC),
		Phone:        "+31612345678",
		StudyCity:    "breda",
		NoShowCount:  0,
		Now:          now,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithBirthDate(birthDate time.Time) *UserBuilder {
	u.BirthDate = birthDate
	return u
}

func (u *UserBuilder) WithNoShowCount(count int32) *UserBuilder {
	u.NoShowCount = count
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	memberNumber, err := user.NewMemberNumber(u.MemberNumber)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	city, err := outlet.NewCity(u.StudyCity)
	if err != nil {
		return nil, err
	}

	account, err := user.NewUser(memberNumber, u.Name, email, u.PasswordHash, role, u.BirthDate, phone, city, u.Now)
	if err != nil {
		return nil, err
	}
	if u.NoShowCount > 0 {
		account = user.ReconstructUser(
			account.ID(), memberNumber, u.Name, email, u.PasswordHash, role,
			u.BirthDate, phone, city, u.NoShowCount, u.Now, u.Now,
		)
	}
	return account, nil
}

func (u *UserBuilder) BuildReconstructed() (*user.User, error) {
	memberNumber, err := user.NewMemberNumber(u.MemberNumber)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	city, err := outlet.NewCity(u.StudyCity)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		uuid.New(), memberNumber, u.Name, email, u.PasswordHash, role,
		u.BirthDate, phone, city, u.NoShowCount, u.Now, u.Now,
	), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		MemberNumber: u.MemberNumber,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		StudyCity:    u.StudyCity,
		NoShowCount:  u.NoShowCount,
		PasswordHash: u.PasswordHash,
	}
}
