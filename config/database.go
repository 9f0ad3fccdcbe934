package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var DBName string = "attendance-tracker-db"
var UserCollection string = "users"
var AttendanceCollection string = "attendances"
var QRCodeCollection string = "qr_codes"

func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOSTRING belum di setting di env. coba setting dulu")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("gagal konek ke MongoDB: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("gagal ping MongoDB: %w", err)
	}

	slog.Info("Connected to MongoDB!", "db", DBName)
	return client, nil
}

// InitDatabase creates the indexes the repositories depend on. The compound
// unique index on (user_id, date) is what makes check-in insert-if-absent.
func InitDatabase(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		AttendanceCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_date"),
			},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		UserCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		QRCodeCollection: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for coll, idx := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("gagal membuat index untuk koleksi %s: %w", coll, err)
		}
	}
	return nil
}

func DisconnectDB(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting from MongoDB", "error", err)
		return
	}
	slog.Info("Disconnect from MongoDB")
}
