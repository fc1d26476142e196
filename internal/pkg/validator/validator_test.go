package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheatandcat/KAWKAW/internal/domain"
)

func TestProblems_WireNames(t *testing.T) {
	input := domain.ReviewInput{
		ProductID: "",
		Nickname:  strings.Repeat("n", 31),
		Rating:    6,
		Title:     "ok",
		Comment:   "ok",
	}

	err := Get().Struct(input)
	require.Error(t, err)

	problems := Problems(err)

	assert.Contains(t, problems, "productId is required")
	assert.Contains(t, problems, "nickname must be at most 30 characters")
	assert.Contains(t, problems, "rating must be at most 5")
}

func TestProblems_RatingBelowMinimum(t *testing.T) {
	input := domain.ReviewInput{
		ProductID: "1",
		Nickname:  "n",
		Rating:    0,
		Title:     "t",
		Comment:   "c",
	}

	err := Get().Struct(input)
	require.Error(t, err)

	// rating 0 trips required before min for an int field
	problems := Problems(err)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "rating")
}

func TestProblems_NonValidatorError(t *testing.T) {
	problems := Problems(errors.New("boom"))

	assert.Equal(t, []string{"invalid request"}, problems)
}

func TestValidReviewInputPasses(t *testing.T) {
	input := domain.ReviewInput{
		ProductID: "1",
		Nickname:  "Taro",
		Rating:    5,
		Title:     strings.Repeat("t", 100),
		Comment:   strings.Repeat("c", 1000),
	}

	assert.NoError(t, Get().Struct(input))
}
