//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stokship/internal/pkg/clock"
	"stokship/internal/usecase/shared"
	sharedmock "stokship/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

type fixture struct {
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	offerItems   *sharedmock.MockOfferItemRepository
	reservations *sharedmock.MockReservationRepository
	deals        *sharedmock.MockDealRepository
	payments     *sharedmock.MockPaymentRepository
	idempotency  *sharedmock.MockIdempotencyRepository
	clock        *clock.MockClock
}

// newFixture wires a unit of work whose Within and WithinReadOnly run fn
// against a mocked transaction and return its error unchanged.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:         ctrl,
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		offerItems:   sharedmock.NewMockOfferItemRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		deals:        sharedmock.NewMockDealRepository(ctrl),
		payments:     sharedmock.NewMockPaymentRepository(ctrl),
		idempotency:  sharedmock.NewMockIdempotencyRepository(ctrl),
		clock:        clock.NewMockClock(fixedNow),
	}

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().OfferItems().Return(f.offerItems).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Deals().Return(f.deals).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	return f
}
