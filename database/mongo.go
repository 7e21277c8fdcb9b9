package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

var UserCollection *mongo.Collection
var ProductCollection *mongo.Collection
var CategoryCollection *mongo.Collection
var OrderCollection *mongo.Collection
var TableCollection *mongo.Collection
var SettingsCollection *mongo.Collection

func ConnectMongo(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	DB = client.Database(dbName)
	return nil
}

func InitCollections() {
	UserCollection = DB.Collection("users")
	ProductCollection = DB.Collection("products")
	CategoryCollection = DB.Collection("categories")
	OrderCollection = DB.Collection("orders")
	TableCollection = DB.Collection("tables")
	SettingsCollection = DB.Collection("settings")
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on customOrderID is what turns the order-number race into a
// duplicate-key insert error instead of two orders sharing a code.
func EnsureIndexes(ctx context.Context) error {
	_, err := OrderCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customOrderID", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
