// Package storage persists scored rounds to MongoDB so a room's history can
// be replayed or audited after the fact.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	Client *mongo.Client
	Db     *mongo.Database
}

// Connect dials MongoDB and pings it before returning, matching the
// connect-and-verify pattern used by every node in this stack.
func Connect(url, db, username, password string, minPool, maxPool int) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(url)
	opts.SetMinPoolSize(uint64(minPool))
	opts.SetMaxPoolSize(uint64(maxPool))
	if username != "" && password != "" {
		opts.SetAuth(options.Credential{Username: username, Password: password})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("storage: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("storage: ping: %w", err)
	}

	return &Mongo{Client: client, Db: client.Database(db)}, nil
}

func (m *Mongo) Close() error {
	if m == nil {
		return nil
	}
	return m.Client.Disconnect(context.TODO())
}
