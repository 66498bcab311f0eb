package highscore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lixenwraith/berry-snake/core"
)

// Default MongoDB names
const (
	DefaultMongoDatabase   = "berry_snake"
	DefaultMongoCollection = "high_scores"
)

// scoreDoc is one tier record, keyed by the tier name
type scoreDoc struct {
	Tier      string    `bson:"_id"`
	Score     int       `bson:"score"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per tier
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore uses collection coll of database db on client; Close disconnects the client
func NewMongoStore(client *mongo.Client, db, coll string) *MongoStore {
	if db == "" {
		db = DefaultMongoDatabase
	}
	if coll == "" {
		coll = DefaultMongoCollection
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(db).Collection(coll),
	}
}

// Load reads all tier documents; unknown ids are ignored
func (ms *MongoStore) Load(ctx context.Context) (Table, error) {
	cursor, err := ms.coll.Find(ctx, bson.D{})
	if err != nil {
		return Table{}, fmt.Errorf("mongo find: %w", err)
	}

	var docs []scoreDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return Table{}, fmt.Errorf("mongo decode: %w", err)
	}

	var t Table
	for _, doc := range docs {
		for _, d := range core.Difficulties {
			if doc.Tier == d.Key() {
				t.Set(d, doc.Score)
			}
		}
	}
	return t, nil
}

// Save upserts every tier document with the table value
func (ms *MongoStore) Save(ctx context.Context, t Table) error {
	now := time.Now().UTC()
	for _, d := range core.Difficulties {
		_, err := ms.coll.UpdateOne(ctx,
			bson.M{"_id": d.Key()},
			bson.M{"$set": bson.M{"score": t.Get(d), "updated_at": now}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("mongo upsert %s: %w", d.Key(), err)
		}
	}
	return nil
}

// UpdateIfHigher relies on $max so the server keeps the maximum without a lock
func (ms *MongoStore) UpdateIfHigher(ctx context.Context, d core.Difficulty, score int) (int, bool, error) {
	key := d.Normalize().Key()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var prev scoreDoc
	err := ms.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{
			"$max": bson.M{"score": score},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		opts,
	).Decode(&prev)

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		// Upsert created the document
		return score, score > 0, nil
	case err != nil:
		return 0, false, fmt.Errorf("mongo $max %s: %w", key, err)
	}

	if score > prev.Score {
		return score, true, nil
	}
	return prev.Score, false, nil
}

func (ms *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ms.client.Disconnect(ctx)
}
