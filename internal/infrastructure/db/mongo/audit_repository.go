package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

const auditCollection = "audit_logs"

// AuditRepository implements ports.AuditRepository on an append-only
// MongoDB collection.
type AuditRepository struct {
	coll *mongo.Collection
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID        string            `bson:"_id"`
	Action    string            `bson:"action"`
	ActorID   string            `bson:"actor_id,omitempty"`
	Subject   string            `bson:"subject"`
	IP        string            `bson:"ip,omitempty"`
	UserAgent string            `bson:"user_agent,omitempty"`
	Details   map[string]string `bson:"details,omitempty"`
	CreatedAt time.Time         `bson:"created_at"`
}

// EnsureIndexes creates the listing index. Safe to call on every start.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}
	return nil
}

func (r *AuditRepository) Insert(ctx context.Context, rec *domain.AuditRecord) error {
	doc := auditDoc{
		ID:        rec.ID,
		Action:    string(rec.Action),
		ActorID:   rec.ActorID,
		Subject:   rec.Subject,
		IP:        rec.IP,
		UserAgent: rec.UserAgent,
		Details:   rec.Details,
		CreatedAt: rec.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Retried delivery of a record that already landed.
			return nil
		}
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit records: %w", err)
	}
	defer cur.Close(ctx)

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit records: %w", err)
	}

	out := make([]*domain.AuditRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.AuditRecord{
			ID:        d.ID,
			Action:    domain.AuditAction(d.Action),
			ActorID:   d.ActorID,
			Subject:   d.Subject,
			IP:        d.IP,
			UserAgent: d.UserAgent,
			Details:   d.Details,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return out, nil
}
