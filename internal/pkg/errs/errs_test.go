//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"surplusfood-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Parallel()

	sentinel := errs.New("sentinel")
	inner := errs.New("inner failure")

	t.Run("マークとラップ元の両方にマッチする", func(t *testing.T) {
		t.Parallel()
		marked := errs.Mark(inner, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, inner))
	})

	t.Run("標準のerrors.Isはマークを見えない", func(t *testing.T) {
		t.Parallel()
		marked := errs.Mark(inner, sentinel)

		// Documented pitfall: marks live outside the Unwrap chain.
		assert.False(t, errors.Is(marked, sentinel))
		assert.True(t, errors.Is(marked, inner))
	})

	t.Run("nilエラーはマークそのものになる", func(t *testing.T) {
		t.Parallel()
		marked := errs.Mark(nil, sentinel)

		require.Equal(t, sentinel, marked)
	})

	t.Run("メッセージはラップ元のまま", func(t *testing.T) {
		t.Parallel()
		marked := errs.Mark(inner, sentinel)

		assert.Equal(t, "inner failure", marked.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nilはnilのまま", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("ラップ後も元のエラーにマッチする", func(t *testing.T) {
		t.Parallel()
		inner := errs.New("boom")
		wrapped := errs.Wrap(inner, "while doing work")

		assert.True(t, errs.Is(wrapped, inner))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Parallel()

	t.Run("nilエラーはnil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})

	t.Run("行数が上限で切られる", func(t *testing.T) {
		t.Parallel()
		lines := errs.ExtractStackLines(errs.New("boom"), 3)

		require.Len(t, lines, 3)
		assert.Equal(t, "boom", lines[0])
	})
}
