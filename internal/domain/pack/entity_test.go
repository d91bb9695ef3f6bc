//go:build unit

package pack_test

import (
	"testing"
	"time"

	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserID() uuid.UUID {
	return uuid.New()
}

func TestPackage(t *testing.T) {
	t.Run("成人向けフラグ", func(t *testing.T) {
		t.Run("アルコール商品を含むと成人向け", func(t *testing.T) {
			p, err := builder.NewPackageBuilder().
				WithProducts(
					builder.NewTestProduct("Sandwich", false),
					builder.NewTestProduct("Beer", true),
				).
				BuildDomain()
			require.NoError(t, err)
			assert.True(t, p.AdultOnly())
		})

		t.Run("アルコール商品なしは成人向けでない", func(t *testing.T) {
			p, err := builder.NewPackageBuilder().
				WithProducts(builder.NewTestProduct("Sandwich", false)).
				BuildDomain()
			require.NoError(t, err)
			assert.False(t, p.AdultOnly())
		})

		t.Run("商品入替でフラグが再計算される", func(t *testing.T) {
			p, err := builder.NewPackageBuilder().
				WithProducts(builder.NewTestProduct("Beer", true)).
				BuildDomain()
			require.NoError(t, err)
			require.True(t, p.AdultOnly())

			p.ReplaceProducts(nil)
			assert.False(t, p.AdultOnly())
		})
	})

	t.Run("予約状態", func(t *testing.T) {
		t.Run("未予約かつ期限内は予約可能", func(t *testing.T) {
			b := builder.NewPackageBuilder()
			p, err := b.BuildDomain()
			require.NoError(t, err)
			assert.True(t, p.IsAvailable(b.Now))
		})

		t.Run("期限切れは予約不可", func(t *testing.T) {
			b := builder.NewPackageBuilder()
			p, err := b.BuildDomain()
			require.NoError(t, err)
			assert.False(t, p.IsAvailable(b.Now.Add(48*time.Hour)))
		})

		t.Run("予約済みは予約不可", func(t *testing.T) {
			b := builder.NewPackageBuilder()
			p, err := b.WithReservedBy(newUserID()).BuildDomain()
			require.NoError(t, err)
			assert.False(t, p.IsAvailable(b.Now))
		})

		t.Run("二重予約はエラー", func(t *testing.T) {
			p, err := builder.NewPackageBuilder().BuildDomain()
			require.NoError(t, err)

			first := newUserID()
			require.NoError(t, p.Reserve(first))
			assert.True(t, p.IsReservedBy(first))

			assert.ErrorIs(t, p.Reserve(newUserID()), pack.ErrAlreadyReserved)
			assert.True(t, p.IsReservedBy(first))
		})
	})

	t.Run("編集適用", func(t *testing.T) {
		p, err := builder.NewPackageBuilder().BuildDomain()
		require.NoError(t, err)

		edit := builder.NewPackageBuilder()
		edit.Name = "Dinner box"
		edit.PriceCents = 500
		d, err := edit.BuildDraft()
		require.NoError(t, err)

		p.ApplyDraft(d)
		assert.Equal(t, "Dinner box", p.Name().String())
		assert.Equal(t, int32(500), p.Price().Cents())
	})
}
