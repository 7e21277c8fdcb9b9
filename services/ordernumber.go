package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cafesync/database"
	"cafesync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DatePrefix builds the day-scoped order code prefix, ORD-{year}-{day}-{month},
// from the server's local clock.
func DatePrefix(t time.Time) string {
	return fmt.Sprintf("ORD-%d-%02d-%02d", t.Year(), t.Day(), int(t.Month()))
}

// NextSequence parses the trailing numeric segment of an order code and
// returns the next value. A malformed code fails the whole order creation.
func NextSequence(lastID string) (int, error) {
	parts := strings.Split(lastID, "-")
	if len(parts) < 5 {
		return 0, fmt.Errorf("malformed order code %q", lastID)
	}
	n, err := strconv.Atoi(parts[4])
	if err != nil {
		return 0, fmt.Errorf("malformed order code %q: %w", lastID, err)
	}
	return n + 1, nil
}

// NextOrderID derives the next per-day sequential order code by reading the
// most recently created order for today's prefix and incrementing its counter.
//
// This is a read-then-write with no transaction: two concurrent creations can
// observe the same last order and produce the same code, and the second insert
// then fails on the unique customOrderID index. Known limitation, kept on
// purpose to match observed behavior.
func NextOrderID(ctx context.Context, now time.Time) (string, error) {
	prefix := DatePrefix(now)

	filter := bson.M{"customOrderID": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var last models.Order
	err := database.OrderCollection.FindOne(ctx, filter, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return fmt.Sprintf("%s-%d", prefix, 1), nil
	}
	if err != nil {
		return "", err
	}

	next, err := NextSequence(last.CustomOrderID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", prefix, next), nil
}
