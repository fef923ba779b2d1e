package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

// Repository defines the tenant-scoped record store consumed by the planning
// service. Paddocks are read-only from the engine's point of view; seeding
// and amendment records are application history written on user request.
type Repository interface {
	ListPaddocks(ctx context.Context, tenantID string) ([]models.Paddock, error)
	UpsertSeedingRecord(ctx context.Context, tenantID string, record models.SeedingRecord) error
	UpsertAmendmentRecord(ctx context.Context, tenantID string, record models.AmendmentRecord) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

const (
	paddocksColl   = "paddocks"
	seedingColl    = "seeding_records"
	amendmentsColl = "amendment_records"
)

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}, nil
}

// ListPaddocks loads all paddock documents belonging to a tenant.
func (r *MongoDBRepository) ListPaddocks(ctx context.Context, tenantID string) ([]models.Paddock, error) {
	collection := r.client.Database(r.dbName).Collection(paddocksColl)

	cursor, err := collection.Find(ctx, bson.M{"tenant_id": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to query paddocks for tenant %s: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var paddocks []models.Paddock
	if err := cursor.All(ctx, &paddocks); err != nil {
		return nil, fmt.Errorf("failed to decode paddocks: %w", err)
	}
	return paddocks, nil
}

// UpsertSeedingRecord replaces or inserts the seeding record identified by
// tenant, paddock and mix name.
func (r *MongoDBRepository) UpsertSeedingRecord(ctx context.Context, tenantID string, record models.SeedingRecord) error {
	collection := r.client.Database(r.dbName).Collection(seedingColl)

	filter := bson.M{
		"tenant_id":  tenantID,
		"paddock_id": record.PaddockID,
		"mix_name":   record.MixName,
	}
	doc := bson.M{
		"tenant_id":     tenantID,
		"paddock_id":    record.PaddockID,
		"mix_name":      record.MixName,
		"species_rates": record.SpeciesRates,
		"notes":         record.Notes,
		"recorded_at":   record.RecordedAt,
	}

	if _, err := collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert seeding record: %w", err)
	}
	return nil
}

// UpsertAmendmentRecord replaces or inserts the amendment record identified
// by tenant, paddock and product.
func (r *MongoDBRepository) UpsertAmendmentRecord(ctx context.Context, tenantID string, record models.AmendmentRecord) error {
	collection := r.client.Database(r.dbName).Collection(amendmentsColl)

	filter := bson.M{
		"tenant_id":  tenantID,
		"paddock_id": record.PaddockID,
		"product":    record.Product,
	}
	doc := bson.M{
		"tenant_id":   tenantID,
		"paddock_id":  record.PaddockID,
		"product":     record.Product,
		"rate_text":   record.RateText,
		"notes":       record.Notes,
		"recorded_at": record.RecordedAt,
	}

	if _, err := collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert amendment record: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
