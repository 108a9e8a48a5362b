package review_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Add(t *testing.T) {
	t.Run("first review sets the mean", func(t *testing.T) {
		s, _ := review.NewSummary(kernel.NewUUID())

		require.NoError(t, s.Add(4))
		assert.InDelta(t, 4.0, s.Rating(), 1e-9)
		assert.Equal(t, 1, s.ReviewsCount())
	})

	t.Run("weighted running mean", func(t *testing.T) {
		// (4.0*2 + 5) / 3 = 13/3
		s, err := review.RestoreSummary(kernel.NewUUID(), 4.0, 2)
		require.NoError(t, err)

		require.NoError(t, s.Add(5))
		assert.InDelta(t, 13.0/3.0, s.Rating(), 1e-9)
		assert.Equal(t, 3, s.ReviewsCount())
	})

	t.Run("out of range rating rejected", func(t *testing.T) {
		s, _ := review.NewSummary(kernel.NewUUID())
		assert.Error(t, s.Add(0))
		assert.Error(t, s.Add(6))
	})
}

func TestSummary_Amend(t *testing.T) {
	t.Run("replaces a counted rating", func(t *testing.T) {
		s, _ := review.RestoreSummary(kernel.NewUUID(), 4.0, 2)

		// (4.0*2 - 3 + 5) / 2 = 5.0
		require.NoError(t, s.Amend(3, 5))
		assert.InDelta(t, 5.0, s.Rating(), 1e-9)
		assert.Equal(t, 2, s.ReviewsCount())
	})

	t.Run("empty summary rejected", func(t *testing.T) {
		s, _ := review.NewSummary(kernel.NewUUID())
		assert.ErrorIs(t, s.Amend(3, 5), review.ErrSummaryIsEmpty)
	})
}

func TestSummary_Retract(t *testing.T) {
	t.Run("removes a counted rating", func(t *testing.T) {
		s, _ := review.RestoreSummary(kernel.NewUUID(), 4.0, 3)

		// (4.0*3 - 2) / 2 = 5.0
		require.NoError(t, s.Retract(2))
		assert.InDelta(t, 5.0, s.Rating(), 1e-9)
		assert.Equal(t, 2, s.ReviewsCount())
	})

	t.Run("last review resets to empty", func(t *testing.T) {
		s, _ := review.RestoreSummary(kernel.NewUUID(), 5.0, 1)

		require.NoError(t, s.Retract(5))
		assert.Zero(t, s.Rating())
		assert.Zero(t, s.ReviewsCount())
	})

	t.Run("empty summary rejected", func(t *testing.T) {
		s, _ := review.NewSummary(kernel.NewUUID())
		assert.ErrorIs(t, s.Retract(4), review.ErrSummaryIsEmpty)
	})
}

func TestRestoreSummary(t *testing.T) {
	t.Run("rejects rating without reviews", func(t *testing.T) {
		_, err := review.RestoreSummary(kernel.NewUUID(), 4.0, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative count", func(t *testing.T) {
		_, err := review.RestoreSummary(kernel.NewUUID(), 4.0, -1)
		assert.Error(t, err)
	})
}
