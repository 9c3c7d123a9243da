// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const auditColumns = `id, user_id, entity_type, entity_id, action, changes, created_at`

const createSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getByEntitySQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE user_id = $1 AND entity_type = $2 AND entity_id = $3
ORDER BY created_at DESC
LIMIT $4`

// Log appends an audit record. A zero ID or CreatedAt is filled in.
// Call it with the mutation's transaction context so both commit together.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		record.ID,
		record.UserID,
		string(record.EntityType),
		record.EntityID,
		string(record.Action),
		changesJSON,
		record.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// GetByEntity returns the newest-first change history of one entity.
func (r *Repo) GetByEntity(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getByEntitySQL, userID, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec         domain.AuditRecord
		entityType  string
		action      string
		changesJSON []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changesJSON, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("scan audit_record: %w", err)
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changesJSON) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(changesJSON, &changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = changes
	}
	return rec, nil
}
