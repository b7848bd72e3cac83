package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_ServesFixtures(t *testing.T) {
	src := NewStaticSource(map[string][]string{
		"9780306406157": {"Great book", "Loved it"},
	})

	got, err := src.GetReviewsForBook(context.Background(), "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, []string{"Great book", "Loved it"}, got)

	// Unknown ISBNs have no reviews rather than an error.
	got, err = src.GetReviewsForBook(context.Background(), "9780136019701")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStaticSource_ReturnsCopies(t *testing.T) {
	src := NewStaticSource(map[string][]string{
		"9780306406157": {"Great book"},
	})

	first, err := src.GetReviewsForBook(context.Background(), "9780306406157")
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := src.GetReviewsForBook(context.Background(), "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, []string{"Great book"}, second)
}

func TestStaticSource_CountsCloses(t *testing.T) {
	src := NewStaticSource(nil)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
	assert.Equal(t, 2, src.Closes())

	// Still usable between sessions.
	_, err := src.GetReviewsForBook(context.Background(), "9780306406157")
	assert.NoError(t, err)
}
