//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"stable-booking/internal/infra"
	"stable-booking/internal/usecase/shared"
	sharedmock "stable-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var errDBDown = errors.New("connection refused")

// txMocks wires a unit of work whose Within runs the callback against a mock Tx.
type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	slots    *sharedmock.MockSlotRepository
	bookings *sharedmock.MockBookingRepository
	rides    *sharedmock.MockRideResultRepository
	riders   *sharedmock.MockRiderRepository
	reviews  *sharedmock.MockReviewRepository
	horses   *sharedmock.MockHorseRepository
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		slots:    sharedmock.NewMockSlotRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		rides:    sharedmock.NewMockRideResultRepository(ctrl),
		riders:   sharedmock.NewMockRiderRepository(ctrl),
		reviews:  sharedmock.NewMockReviewRepository(ctrl),
		horses:   sharedmock.NewMockHorseRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().RideResults().Return(m.rides).AnyTimes()
	m.tx.EXPECT().Riders().Return(m.riders).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().Horses().Return(m.horses).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	return m
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}
