package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "FeedstreamDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	FormCollection           *mongo.Collection
	QuestionCollection       *mongo.Collection
	ResponseCollection       *mongo.Collection
	LegacyResponseCollection *mongo.Collection
	StaffCollection          *mongo.Collection
	SubjectCollection        *mongo.Collection
	StaffSubjectCollection   *mongo.Collection
	NotificationCollection   *mongo.Collection
)

// ConnectMongoDB establishes the MongoDB connection exactly once.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		FormCollection = GetCollection(DBName, "forms")
		QuestionCollection = GetCollection(DBName, "questions")
		ResponseCollection = GetCollection(DBName, "responses")
		LegacyResponseCollection = GetCollection(DBName, "feedbackResponses")
		StaffCollection = GetCollection(DBName, "staff")
		SubjectCollection = GetCollection(DBName, "subjects")
		StaffSubjectCollection = GetCollection(DBName, "staffSubjects")
		NotificationCollection = GetCollection(DBName, "notifications")

		ensureIndexes()

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// ensureIndexes declares the indexes the application relies on. The unique
// (formId, email) index is the real backstop for the duplicate-submission
// check: the pre-insert lookup is only a fast path and can race.
func ensureIndexes() {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "formId", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"email": bson.M{"$gt": ""}}),
		},
		{
			Keys: bson.D{{Key: "formId", Value: 1}, {Key: "submittedAt", Value: -1}},
		},
	}
	if _, err := ResponseCollection.Indexes().CreateMany(context.TODO(), indexes); err != nil {
		log.Println("⚠️ Warning: failed to ensure response indexes:", err)
	}

	codeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "accessCode", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := FormCollection.Indexes().CreateOne(context.TODO(), codeIndex); err != nil {
		log.Println("⚠️ Warning: failed to ensure form accessCode index:", err)
	}
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
