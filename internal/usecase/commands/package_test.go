//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"surplusfood-api/internal/domain/outlet"
	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/product"
	"surplusfood-api/internal/domain/reservation"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/infra"
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/pkg/clock"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/usecase/commands"
	"surplusfood-api/internal/usecase/shared"
	"surplusfood-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// requireIs asserts through errs.Is because the usecase attaches its
// sentinels as marks, which the stdlib errors.Is cannot see.
func requireIs(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errs.Is(err, target), "expected %q in chain of %q", target, err)
}

type fixture struct {
	reads        *fakeReads
	packages     *fakePackageRepo
	users        *fakeUserRepo
	reservations *fakeReservationRepo
	uc           commands.PackageCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	reads := &fakeReads{
		packages: map[uuid.UUID]*pack.Package{},
		outlets:  map[uuid.UUID]*outlet.Outlet{},
		products: map[uuid.UUID]*product.Product{},
		users:    map[uuid.UUID]*user.User{},
	}
	f := &fixture{
		reads:        reads,
		packages:     &fakePackageRepo{},
		users:        &fakeUserRepo{},
		reservations: &fakeReservationRepo{},
	}
	uow := &fakeUoW{fixture: f}
	f.uc = commands.NewPackageUseCase(uow, clock.NewMockClock(testNow))
	return f
}

func (f *fixture) addOutlet(t *testing.T, hotMeals bool) *outlet.Outlet {
	t.Helper()
	b := builder.NewOutletBuilder()
	if hotMeals {
		b.WithHotMeals()
	}
	o, err := b.BuildDomain()
	require.NoError(t, err)
	f.reads.outlets[o.ID()] = o
	return o
}

func (f *fixture) addProduct(p *product.Product) *product.Product {
	f.reads.products[p.ID()] = p
	return p
}

func (f *fixture) draft(outletID uuid.UUID) commands.PackageDraft {
	return commands.PackageDraft{
		Name:           "Leftover lunch",
		City:           "breda",
		MealType:       "bread",
		OutletID:       outletID,
		PickupTime:     testNow.Add(20 * time.Hour).Format(time.RFC3339),
		ExpirationTime: testNow.Add(24 * time.Hour).Format(time.RFC3339),
		PriceCents:     350,
	}
}

func TestCreatePackage(t *testing.T) {
	t.Parallel()

	t.Run("正常系: パッケージが作成される", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)

		id, err := f.uc.CreatePackage(context.Background(), f.draft(o.ID()))
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
		require.NotNil(t, f.packages.created)
		require.Equal(t, id, f.packages.created.ID())
	})

	t.Run("正常系: 不明な商品IDは黙ってスキップされる", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)
		known := f.addProduct(builder.NewTestProduct("Bread Roll", false))

		draft := f.draft(o.ID())
		draft.ProductIDs = []uuid.UUID{known.ID(), uuid.New(), uuid.New()}

		_, err := f.uc.CreatePackage(context.Background(), draft)
		require.NoError(t, err)
		require.Len(t, f.packages.created.Products(), 1)
		require.Equal(t, known.ID(), f.packages.created.Products()[0].ID())
	})

	t.Run("正常系: アルコール入り商品で成人限定フラグが立つ", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)
		beer := f.addProduct(builder.NewTestProduct("Craft Beer", true))

		draft := f.draft(o.ID())
		draft.ProductIDs = []uuid.UUID{beer.ID()}

		_, err := f.uc.CreatePackage(context.Background(), draft)
		require.NoError(t, err)
		require.True(t, f.packages.created.AdultOnly())
	})

	t.Run("異常系: 店舗が存在しない", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		_, err := f.uc.CreatePackage(context.Background(), f.draft(uuid.New()))
		requireIs(t, err, commands.ErrOutletNotFound)
	})

	t.Run("異常系: 2日より先のピックアップはドメイン検証エラー", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)

		draft := f.draft(o.ID())
		draft.PickupTime = testNow.Add(72 * time.Hour).Format(time.RFC3339)
		draft.ExpirationTime = testNow.Add(76 * time.Hour).Format(time.RFC3339)

		_, err := f.uc.CreatePackage(context.Background(), draft)
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrPickupTooFarAhead)
	})

	t.Run("異常系: 過去のピックアップ時刻は店舗不明より先に報告される", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		draft := f.draft(uuid.New())
		draft.PickupTime = testNow.Add(-2 * time.Hour).Format(time.RFC3339)

		_, err := f.uc.CreatePackage(context.Background(), draft)
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrPickupNotInFuture)
	})

	t.Run("異常系: 不正な時刻書式はドメイン検証エラー", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)

		draft := f.draft(o.ID())
		draft.PickupTime = "tomorrow noon"

		_, err := f.uc.CreatePackage(context.Background(), draft)
		requireIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdatePackage(t *testing.T) {
	t.Parallel()

	t.Run("正常系: 商品セットが丸ごと置き換えられる", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)
		existing, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		f.reads.packages[existing.ID()] = existing
		juice := f.addProduct(builder.NewTestProduct("Orange Juice", false))

		draft := f.draft(o.ID())
		draft.ProductIDs = []uuid.UUID{juice.ID()}

		require.NoError(t, f.uc.UpdatePackage(context.Background(), existing.ID(), draft))
		require.Equal(t, []uuid.UUID{juice.ID()}, f.packages.replacedProductIDs)
	})

	t.Run("異常系: 存在しないパッケージ", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)

		err := f.uc.UpdatePackage(context.Background(), uuid.New(), f.draft(o.ID()))
		requireIs(t, err, commands.ErrPackageNotFound)
	})

	t.Run("異常系: 予約済みパッケージは編集できない", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)
		reserved, err := builder.NewPackageBuilder().WithReservedBy(uuid.New()).BuildDomain()
		require.NoError(t, err)
		f.reads.packages[reserved.ID()] = reserved

		err = f.uc.UpdatePackage(context.Background(), reserved.ID(), f.draft(o.ID()))
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrAlreadyReserved)
	})

	t.Run("異常系: 予約済みガードは店舗不明より先に報告される", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		reserved, err := builder.NewPackageBuilder().WithReservedBy(uuid.New()).BuildDomain()
		require.NoError(t, err)
		f.reads.packages[reserved.ID()] = reserved

		err = f.uc.UpdatePackage(context.Background(), reserved.ID(), f.draft(uuid.New()))
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrAlreadyReserved)
	})

	t.Run("異常系: 事前読み取り後に予約されたパッケージは条件付きUPDATEで弾かれる", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		o := f.addOutlet(t, false)
		existing, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		f.reads.packages[existing.ID()] = existing
		f.packages.updateErr = infra.WrapRepoErr("package reserved or missing", nil, infra.KindConflict)

		err = f.uc.UpdatePackage(context.Background(), existing.ID(), f.draft(o.ID()))
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrAlreadyReserved)
	})
}

func TestDeletePackage(t *testing.T) {
	t.Parallel()

	t.Run("正常系: 未予約パッケージを削除できる", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		existing, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		f.reads.packages[existing.ID()] = existing

		require.NoError(t, f.uc.DeletePackage(context.Background(), existing.ID()))
		require.Equal(t, existing.ID(), f.packages.deletedID)
	})

	t.Run("異常系: 存在しないパッケージ", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		err := f.uc.DeletePackage(context.Background(), uuid.New())
		requireIs(t, err, commands.ErrPackageNotFound)
	})

	t.Run("異常系: 予約済みパッケージは削除できない", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		reserved, err := builder.NewPackageBuilder().WithReservedBy(uuid.New()).BuildDomain()
		require.NoError(t, err)
		f.reads.packages[reserved.ID()] = reserved

		err = f.uc.DeletePackage(context.Background(), reserved.ID())
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrReservedNoDelete)
	})

	t.Run("異常系: 事前読み取り後に予約されたパッケージは条件付きDELETEで弾かれる", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		existing, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		f.reads.packages[existing.ID()] = existing
		f.packages.deleteErr = infra.WrapRepoErr("package reserved or missing", nil, infra.KindConflict)

		err = f.uc.DeletePackage(context.Background(), existing.ID())
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, pack.ErrReservedNoDelete)
	})
}

func TestReservePackage(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*fixture, *pack.Package, *user.User) {
		t.Helper()
		f := newFixture(t)
		pkg, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)
		f.reads.packages[pkg.ID()] = pkg
		member, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		f.reads.users[member.ID()] = member
		return f, pkg, member
	}

	t.Run("正常系: 予約が作成される", func(t *testing.T) {
		t.Parallel()
		f, pkg, member := setup(t)

		id, err := f.uc.ReservePackage(context.Background(), pkg.ID(), member.ID())
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
		require.Equal(t, pkg.ID(), f.packages.reservedPackageID)
		require.Equal(t, member.ID(), f.reservations.created.UserID())
	})

	t.Run("異常系: 同じピックアップ日に既に予約がある", func(t *testing.T) {
		t.Parallel()
		f, pkg, member := setup(t)
		f.reads.sameDay = true

		_, err := f.uc.ReservePackage(context.Background(), pkg.ID(), member.ID())
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, reservation.ErrPickupDateTaken)
	})

	t.Run("異常系: 条件付きUPDATEの競合は予約不可として扱う", func(t *testing.T) {
		t.Parallel()
		f, pkg, member := setup(t)
		f.packages.reserveErr = infra.WrapRepoErr("package already claimed", nil, infra.KindConflict)

		_, err := f.uc.ReservePackage(context.Background(), pkg.ID(), member.ID())
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, reservation.ErrPackageUnavailable)
	})

	t.Run("異常系: 予約行の一意制約違反も予約不可として扱う", func(t *testing.T) {
		t.Parallel()
		f, pkg, member := setup(t)
		f.reservations.createErr = infra.WrapRepoErr("duplicate reservation", nil, infra.KindDuplicateKey)

		_, err := f.uc.ReservePackage(context.Background(), pkg.ID(), member.ID())
		requireIs(t, err, commands.ErrDomainValidation)
		requireIs(t, err, reservation.ErrPackageUnavailable)
	})

	t.Run("異常系: 存在しない利用者", func(t *testing.T) {
		t.Parallel()
		f, pkg, _ := setup(t)

		_, err := f.uc.ReservePackage(context.Background(), pkg.ID(), uuid.New())
		requireIs(t, err, commands.ErrUserNotFound)
	})
}

// ---- hand-written fakes over the unit-of-work ports ----

type fakeUoW struct {
	fixture *fixture
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{fixture: u.fixture})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.fixture.reads
}

type fakeTx struct {
	fixture *fixture
}

func (t *fakeTx) Packages() shared.PackageRepository        { return t.fixture.packages }
func (t *fakeTx) Users() shared.UserRepository              { return t.fixture.users }
func (t *fakeTx) Reservations() shared.ReservationRepository { return t.fixture.reservations }
func (t *fakeTx) Reads() shared.CommandReads                { return t.fixture.reads }
func (t *fakeTx) DB() db.DBTX                               { return nil }

type fakeReads struct {
	packages map[uuid.UUID]*pack.Package
	outlets  map[uuid.UUID]*outlet.Outlet
	products map[uuid.UUID]*product.Product
	users    map[uuid.UUID]*user.User
	sameDay  bool
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (r *fakeReads) PackageByID(_ context.Context, id uuid.UUID) (*pack.Package, error) {
	if p, ok := r.packages[id]; ok {
		return p, nil
	}
	return nil, notFound("package")
}

func (r *fakeReads) PackageWithDetails(ctx context.Context, id uuid.UUID) (*pack.Package, error) {
	return r.PackageByID(ctx, id)
}

func (r *fakeReads) OutletByID(_ context.Context, id uuid.UUID) (*outlet.Outlet, error) {
	if o, ok := r.outlets[id]; ok {
		return o, nil
	}
	return nil, notFound("outlet")
}

func (r *fakeReads) ProductsByIDs(_ context.Context, ids []uuid.UUID) ([]*product.Product, error) {
	var found []*product.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, notFound("user")
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, notFound("user")
}

func (r *fakeReads) UserByMemberNumber(_ context.Context, memberNumber string) (*user.User, error) {
	for _, u := range r.users {
		if u.MemberNumber().Value() == memberNumber {
			return u, nil
		}
	}
	return nil, notFound("user")
}

func (r *fakeReads) HasReservationOnPickupDate(_ context.Context, _ uuid.UUID, _ time.Time) (bool, error) {
	return r.sameDay, nil
}

type fakePackageRepo struct {
	created            *pack.Package
	replacedProductIDs []uuid.UUID
	deletedID          uuid.UUID
	reservedPackageID  uuid.UUID
	reserveErr         error
	updateErr          error
	deleteErr          error
}

func (r *fakePackageRepo) Create(_ context.Context, _ db.DBTX, p *pack.Package) (uuid.UUID, error) {
	r.created = p
	return p.ID(), nil
}

func (r *fakePackageRepo) Update(_ context.Context, _ db.DBTX, _ *pack.Package) error {
	return r.updateErr
}

func (r *fakePackageRepo) ReplaceProducts(_ context.Context, _ db.DBTX, _ uuid.UUID, productIDs []uuid.UUID) error {
	r.replacedProductIDs = productIDs
	return nil
}

func (r *fakePackageRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedID = id
	return nil
}

func (r *fakePackageRepo) Reserve(_ context.Context, _ db.DBTX, packageID, _ uuid.UUID) error {
	if r.reserveErr != nil {
		return r.reserveErr
	}
	r.reservedPackageID = packageID
	return nil
}

type fakeUserRepo struct {
	incrementedID uuid.UUID
	createErr     error
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	return u.ID(), nil
}

func (r *fakeUserRepo) IncrementNoShow(_ context.Context, _ db.DBTX, userID uuid.UUID) (int64, error) {
	r.incrementedID = userID
	return 1, nil
}

type fakeReservationRepo struct {
	created   *reservation.Reservation
	createErr error
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = res
	return res.ID(), nil
}
