package readstore

import (
	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/product"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Rehydration helpers. Stored rows already satisfied the domain rules at
// write time; a failure here means the data was corrupted outside the app.

func reconstructPackage(
	id uuid.UUID,
	name, city, mealType string,
	outletID uuid.UUID,
	pickupTime, expirationTime pgtype.Timestamptz,
	priceCents int32,
	adultOnly bool,
	reservedBy pgtype.UUID,
	products []*product.Product,
	createdAt, updatedAt pgtype.Timestamptz,
) (*pack.Package, error) {
	nameVO, err := pack.NewName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("stored package name is invalid", err)
	}
	cityVO, err := outlet.NewCity(city)
	if err != nil {
		return nil, infra.WrapRepoErr("stored package city is invalid", err)
	}
	mealTypeVO, err := pack.NewMealType(mealType)
	if err != nil {
		return nil, infra.WrapRepoErr("stored meal type is invalid", err)
	}
	priceVO, err := pack.NewPrice(priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored price is invalid", err)
	}

	return pack.ReconstructPackage(
		id, nameVO, cityVO, mealTypeVO, outletID,
		pgconv.TimeFromPgtype(pickupTime), pgconv.TimeFromPgtype(expirationTime),
		priceVO, adultOnly,
		pgconv.UUIDPtrFromPgtype(reservedBy),
		products,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func reconstructUser(
	id uuid.UUID,
	memberNumber, name, email, passwordHash, role string,
	birthDate pgtype.Date,
	phone, studyCity string,
	noShowCount int32,
	createdAt, updatedAt pgtype.Timestamptz,
) (*user.User, error) {
	memberVO, err := user.NewMemberNumber(memberNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("stored member number is invalid", err)
	}
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}
	phoneVO, err := user.NewPhone(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored phone number is invalid", err)
	}
	cityVO, err := outlet.NewCity(studyCity)
	if err != nil {
		return nil, infra.WrapRepoErr("stored study city is invalid", err)
	}

	return user.ReconstructUser(
		id, memberVO, name, emailVO, passwordHash, roleVO,
		pgconv.DateFromPgtype(birthDate), phoneVO, cityVO, noShowCount,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func scanProduct(rows pgx.Rows) (*product.Product, error) {
	var (
		id              uuid.UUID
		name            string
		containsAlcohol bool
		photoURL        pgtype.Text
		createdAt       pgtype.Timestamptz
	)
	if err := rows.Scan(&id, &name, &containsAlcohol, &photoURL, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan product row", err)
	}
	return product.ReconstructProduct(
		id, name, containsAlcohol,
		pgconv.StringPtrFromPgtype(photoURL),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
