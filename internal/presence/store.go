// Package presence tracks per-user online status in MongoDB. The batch
// lookup keeps conversation-list assembly at a constant number of round
// trips regardless of participant count.
package presence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"insiderdm/internal/common"
	"insiderdm/internal/config"
)

const collectionName = "presence"

// Users with no presence document, or one older than this, read as offline.
const staleAfter = 5 * time.Minute

type presenceDoc struct {
	UserID       string    `bson:"user_id"`
	Status       string    `bson:"status"`
	LastActiveAt time.Time `bson:"last_active_at"`
}

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(c.MongoDB.Database),
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}

type Store struct {
	collection *mongo.Collection
}

func NewStore(mc *MongoClient) *Store {
	return &Store{collection: mc.Database.Collection(collectionName)}
}

var _ common.PresenceStore = (*Store)(nil)

func (s *Store) Set(ctx context.Context, userID string, status common.PresenceStatus) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{
		"user_id":        userID,
		"status":         string(status),
		"last_active_at": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to update presence: %w", err)
	}
	return nil
}

func (s *Store) Batch(ctx context.Context, userIDs []string) (map[string]common.PresenceStatus, error) {
	statuses := make(map[string]common.PresenceStatus, len(userIDs))
	for _, id := range userIDs {
		statuses[id] = common.PresenceOffline
	}
	if len(userIDs) == 0 {
		return statuses, nil
	}

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to query presence: %w", err)
	}
	defer cursor.Close(ctx)

	cutoff := time.Now().Add(-staleAfter)
	for cursor.Next(ctx) {
		var doc presenceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode presence document: %w", err)
		}
		if doc.LastActiveAt.Before(cutoff) {
			continue
		}
		statuses[doc.UserID] = common.PresenceStatus(doc.Status)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("presence cursor error: %w", err)
	}

	return statuses, nil
}
