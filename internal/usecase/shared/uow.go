package shared

import (
	"context"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	sqlc "stokship/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full read-committed transaction for write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// RunLock guarantees that at most one process runs fn for a given name at a
// time. When the lock is held elsewhere fn is skipped and acquired is false.
type RunLock interface {
	TryRun(ctx context.Context, name string, fn func(ctx context.Context) error) (acquired bool, err error)
}

type Tx interface {
	OfferItems() OfferItemRepository
	Reservations() ReservationRepository
	Deals() DealRepository
	Payments() PaymentRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type OfferItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, item *inventory.OfferItem) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*inventory.OfferItem, error)
	// TryReserve increments the reserved counter if enough stock is available.
	// It reports false, without error, when the conditional update matched no row.
	TryReserve(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) (bool, error)
	// DecrementReserved reports false when the counter would become negative.
	DecrementReserved(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) (bool, error)
	Disable(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	HeldQuantity(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, offerItemID, dealID uuid.UUID, quantity int, at time.Time) (*inventory.Reservation, error)
	ReleaseByDeal(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID, at time.Time) ([]inventory.Reservation, error)
	ConfirmByDeal(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID, at time.Time) (int, error)
	ListByDeal(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) ([]inventory.Reservation, error)
}

type DealRepository interface {
	NextNumber(ctx context.Context, tx sqlc.DBTX) (string, error)
	// Create inserts the deal and its pending transitions.
	Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error)
	// FindByIDForUpdate locks the deal row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error)
	// Save writes the status fields and appends pending transitions.
	Save(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error
	ListHistory(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) ([]deal.Transition, error)
	ListExpirable(ctx context.Context, tx sqlc.DBTX, cutoff time.Time, limit int32) ([]ExpirableDeal, error)
}

type PaymentRepository interface {
	// HasCompleted locks the deal's payment rows for the rest of tx.
	HasCompleted(ctx context.Context, tx sqlc.DBTX, dealID uuid.UUID) (bool, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*PaymentSnapshot, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	SetResult(ctx context.Context, tx sqlc.DBTX, key, userID, dealID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

// NotificationJob is one queued delivery for the outbox worker.
type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte // JSON
	RunAt   time.Time
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job NotificationJob) (uuid.UUID, error)
}
