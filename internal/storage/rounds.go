package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoundRecord is one settled round: the room, the winning seat, the names
// of the matched yaku, and the resulting han/fu/yakuman/points. The hand
// and the selected partition are not stored.
type RoundRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	RoomID     string             `bson:"room_id"`
	WinnerSeat int                `bson:"winner_seat"`
	Han        int                `bson:"han"`
	Fu         int                `bson:"fu"`
	Yakuman    int                `bson:"yakuman"`
	Points     int                `bson:"points"`
	Yaku       []string           `bson:"yaku"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type RoundRepository struct {
	mongo *Mongo
}

func NewRoundRepository(m *Mongo) *RoundRepository {
	return &RoundRepository{mongo: m}
}

func (r *RoundRepository) Save(ctx context.Context, round *RoundRecord) error {
	collection := r.mongo.Db.Collection("round_records")
	if round.ID.IsZero() {
		round.ID = primitive.NewObjectID()
	}
	round.CreatedAt = time.Now()

	_, err := collection.InsertOne(ctx, round)
	if err != nil {
		return fmt.Errorf("storage: save round record: %w", err)
	}
	return nil
}

// FindByRoom returns a room's most recently settled rounds, newest first,
// capped at limit -- the read path a reconnecting client uses to resync
// the hands it missed while disconnected.
func (r *RoundRepository) FindByRoom(ctx context.Context, roomID string, limit int64) ([]*RoundRecord, error) {
	collection := r.mongo.Db.Collection("round_records")

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := collection.Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, fmt.Errorf("storage: find round records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*RoundRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("storage: decode round records: %w", err)
	}
	return records, nil
}
