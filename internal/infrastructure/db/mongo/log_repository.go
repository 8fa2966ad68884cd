package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minimart/commerce-system/internal/core/domain"
)

const (
	logCollection     = "logs"
	counterCollection = "counters"
	logCounterID      = "log_seq"
)

// LogRepository implements ports.LogRepository on MongoDB. Sequence numbers
// come from an atomically incremented counter document, which makes the log
// order total and monotonic across concurrent appends.
type LogRepository struct {
	logs     *mongo.Collection
	counters *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{
		logs:     db.Collection(logCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoLogEntry struct {
	Seq      uint64 `bson:"seq"`
	Event    string `bson:"event"`
	Username string `bson:"username"`
	Name     string `bson:"name,omitempty"`
	At       int64  `bson:"at"`
}

// EnsureIndexes creates the indexes serving recency and history queries.
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "seq", Value: -1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "seq", Value: -1}}},
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "seq", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure log indexes: %w", err)
	}
	return nil
}

// nextSeq atomically allocates the next sequence number.
func (r *LogRepository) nextSeq(ctx context.Context) (uint64, error) {
	var counter struct {
		Value uint64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": logCounterID},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate log sequence: %w", err)
	}
	return counter.Value, nil
}

func (r *LogRepository) Append(ctx context.Context, entry *domain.LogEntry) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}
	entry.Seq = seq

	doc := mongoLogEntry{
		Seq:      entry.Seq,
		Event:    entry.Event,
		Username: entry.Username,
		Name:     entry.ProductName,
		At:       entry.At.Unix(),
	}
	if _, err := r.logs.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}

func (r *LogRepository) LastModifier(ctx context.Context, productName string) (string, error) {
	var mle mongoLogEntry
	err := r.logs.FindOne(ctx,
		bson.M{"name": productName},
		options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}}),
	).Decode(&mle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", domain.ErrNoHistory
		}
		return "", fmt.Errorf("find last modifier: %w", err)
	}
	return mle.Username, nil
}

func (r *LogRepository) ListByUser(ctx context.Context, username string) ([]domain.LogEntry, error) {
	return r.list(ctx, bson.M{"username": username})
}

func (r *LogRepository) ListByProduct(ctx context.Context, productName string) ([]domain.LogEntry, error) {
	return r.list(ctx, bson.M{"name": productName})
}

func (r *LogRepository) list(ctx context.Context, filter bson.M) ([]domain.LogEntry, error) {
	cursor, err := r.logs.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.LogEntry
	for cursor.Next(ctx) {
		var mle mongoLogEntry
		if err := cursor.Decode(&mle); err != nil {
			return nil, fmt.Errorf("decode log entry: %w", err)
		}
		entries = append(entries, domain.LogEntry{
			Seq:         mle.Seq,
			Event:       mle.Event,
			Username:    mle.Username,
			ProductName: mle.Name,
			At:          unixToTime(mle.At),
		})
	}
	return entries, cursor.Err()
}
