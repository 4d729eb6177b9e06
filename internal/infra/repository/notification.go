package repository

import (
	"context"
	"encoding/json"

	"stokship/internal/infra"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/errs"
	"stokship/internal/pkg/pgconv"
	"stokship/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

// Enqueue queues job for the delivery worker. The payload column is JSONB, so
// malformed payloads are rejected before they reach the database.
func (r *NotificationRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
	if job.Kind == "" || job.Topic == "" {
		return uuid.Nil, errs.Mark(errs.New("notification job needs kind and topic"), errs.ErrDomainValidation)
	}
	if !json.Valid(job.Payload) {
		return uuid.Nil, errs.Mark(errs.Newf("notification job %s has a non-JSON payload", job.Kind), errs.ErrDomainValidation)
	}

	id, err := r.queries.CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
		Kind:    job.Kind,
		Topic:   job.Topic,
		Payload: job.Payload,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return id, nil
}
