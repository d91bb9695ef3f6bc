package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/pkg/clock"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/pkg/password"
	"surplusfood-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken        = errs.New("this email address is already registered")
	ErrMemberNumberTaken = errs.New("this member number is already registered")
)

// RegisterUserInput carries the raw registration form. BirthDate is a
// date-only value in "2006-01-02" form.
type RegisterUserInput struct {
	MemberNumber string
	Name         string
	Email        string
	Password     string
	Role         string
	BirthDate    string
	Phone        string
	StudyCity    string
}

type UserCommands interface {
	Register(ctx context.Context, input RegisterUserInput) (uuid.UUID, error)
	// RecordNoShow bumps the user's no-show count. Unknown users are a
	// silent no-op so pickup-window sweeps never fail halfway.
	RecordNoShow(ctx context.Context, userID uuid.UUID) error
	// IsEligibleToReserve answers the standing question independent of any
	// package: has the member accumulated too many no-shows to reserve.
	IsEligibleToReserve(ctx context.Context, userID uuid.UUID) (bool, error)
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clock clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, clock: clock}
}

func (u *userUseCaseImpl) Register(ctx context.Context, input RegisterUserInput) (uuid.UUID, error) {
	now := u.clock.Now()
	reads := u.uow.CommandReads()

	memberNumber, err := user.NewMemberNumber(input.MemberNumber)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	rawPassword, err := user.NewPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	phone, err := user.NewPhone(input.Phone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	studyCity, err := outlet.NewCity(input.StudyCity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	birthDate, err := time.Parse(time.DateOnly, input.BirthDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(rawPassword.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	account, err := user.NewUser(memberNumber, input.Name, email, hash, role, birthDate, phone, studyCity, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.checkUniqueness(ctx, reads, email.Value(), memberNumber.Value()); err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, err := tx.Users().Create(ctx, tx.DB(), account)
		if err != nil {
			// Uniqueness pre-checks race with concurrent registrations;
			// the constraints decide.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, duplicateKeySentinel(err))
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("user registered", "user_id", id, "role", role.String())
	return id, nil
}

// duplicateKeySentinel tells apart which unique constraint fired. Both the
// email and the member number columns are unique, so the constraint name is
// the only way to report the right field.
func duplicateKeySentinel(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "member_number") {
		return ErrMemberNumberTaken
	}
	return ErrEmailTaken
}

func (u *userUseCaseImpl) checkUniqueness(ctx context.Context, reads shared.CommandReads, email, memberNumber string) error {
	_, err := reads.UserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	_, err = reads.UserByMemberNumber(ctx, memberNumber)
	switch {
	case err == nil:
		return ErrMemberNumberTaken
	case !infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (u *userUseCaseImpl) IsEligibleToReserve(ctx context.Context, userID uuid.UUID) (bool, error) {
	account, err := u.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, ErrUserNotFound)
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return account.CanReserve(), nil
}

func (u *userUseCaseImpl) RecordNoShow(ctx context.Context, userID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Users().IncrementNoShow(ctx, tx.DB(), userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			slog.Warn("no-show recorded for unknown user", "user_id", userID)
		}
		return nil
	})
}
