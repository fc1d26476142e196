package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wheatandcat/KAWKAW/internal/domain"
	"github.com/wheatandcat/KAWKAW/internal/pkg/logger"
)

// MockSummaryWriter is a mock implementation of SummaryWriter
type MockSummaryWriter struct {
	mock.Mock
}

func (m *MockSummaryWriter) SetRatingSummary(ctx context.Context, summary *domain.RatingSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCalculator_CalculateAndStore(t *testing.T) {
	db, dbMock := newMockDB(t)
	store := new(MockSummaryWriter)
	calc := NewCalculator(db, store, logger.New("test"))

	dbMock.ExpectQuery(`SELECT ROUND\(AVG\(rating\)::numeric, 1\), COUNT\(\*\)`).
		WithArgs("3").
		WillReturnRows(sqlmock.NewRows([]string{"round", "count"}).AddRow(4.2, 17))

	store.On("SetRatingSummary", mock.Anything, &domain.RatingSummary{
		ProductID: "3",
		Average:   4.2,
		Count:     17,
	}).Return(nil)

	err := calc.CalculateAndStore(context.Background(), "3")

	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	store.AssertExpectations(t)
}

// A product whose last review was deleted gets a zero summary, not a
// stale one.
func TestCalculator_CalculateAndStore_NoReviews(t *testing.T) {
	db, dbMock := newMockDB(t)
	store := new(MockSummaryWriter)
	calc := NewCalculator(db, store, logger.New("test"))

	dbMock.ExpectQuery(`SELECT ROUND\(AVG\(rating\)::numeric, 1\), COUNT\(\*\)`).
		WithArgs("8").
		WillReturnRows(sqlmock.NewRows([]string{"round", "count"}).AddRow(nil, 0))

	store.On("SetRatingSummary", mock.Anything, &domain.RatingSummary{ProductID: "8"}).Return(nil)

	err := calc.CalculateAndStore(context.Background(), "8")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCalculator_CalculateAndStore_StoreFailure(t *testing.T) {
	db, dbMock := newMockDB(t)
	store := new(MockSummaryWriter)
	calc := NewCalculator(db, store, logger.New("test"))

	dbMock.ExpectQuery(`SELECT ROUND\(AVG\(rating\)::numeric, 1\), COUNT\(\*\)`).
		WithArgs("3").
		WillReturnRows(sqlmock.NewRows([]string{"round", "count"}).AddRow(4.0, 2))

	store.On("SetRatingSummary", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	err := calc.CalculateAndStore(context.Background(), "3")

	assert.Error(t, err)
}
