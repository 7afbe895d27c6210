package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection            *mongo.Collection
	WorkerProfileCollection   *mongo.Collection
	EmployerProfileCollection *mongo.Collection
	JobCollection             *mongo.Collection
	ApplicationCollection     *mongo.Collection
	ReviewsCollection         *mongo.Collection
	Client                    *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("ustabul")
	UserCollection = database.Collection("users")
	WorkerProfileCollection = database.Collection("workerprofiles")
	EmployerProfileCollection = database.Collection("employerprofiles")
	JobCollection = database.Collection("jobs")
	ApplicationCollection = database.Collection("applications")
	ReviewsCollection = database.Collection("reviews")

	if err := EnsureIndexes(context.TODO()); err != nil {
		log.Printf("Failed to create indexes: %v", err)
	}
}

// EnsureIndexes creates the uniqueness and lookup indexes the handlers rely
// on: unique email, one application per (job, worker), one review per
// (job, reviewer, reviewee).
func EnsureIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = ApplicationCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "jobid", Value: 1}, {Key: "workerId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "workerId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "employerId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "jobid", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = JobCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employerId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = ReviewsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "jobid", Value: 1}, {Key: "reviewerId", Value: 1}, {Key: "revieweeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "revieweeId", Value: 1}}},
	})
	if err != nil {
		return err
	}

	for _, coll := range []*mongo.Collection{WorkerProfileCollection, EmployerProfileCollection} {
		_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "userid", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
