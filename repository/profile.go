package repository

import (
	"context"
	"main/middleware"
	"main/model"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfilesRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for ProfilesRepo
func GetProfilesRepo(client *mongo.Client) *ProfilesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("PROFILES_COLLECTION")
	return &ProfilesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetOrCreateProfile fetches the user's ledger, creating an empty one
// on first access. The upsert makes first-touch races harmless.
func (r *ProfilesRepo) GetOrCreateProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"total_points_earned": 0,
			"points_spent":        0,
			"created_at":          time.Now(),
			"updated_at":          time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile model.UserProfile
	if err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// AwardPoints credits earned points. The lifetime counter is the only
// stored balance input, so the award is a single atomic increment.
func (r *ProfilesRepo) AwardPoints(ctx context.Context, userID string, amount int) error {
	defer middleware.TrackDBOperation("award", r.MongoCollection.Name()).ObserveDuration()

	update := bson.M{
		"$inc": bson.M{"total_points_earned": amount},
		"$set": bson.M{"updated_at": time.Now()},
		"$setOnInsert": bson.M{
			"points_spent": 0,
			"created_at":   time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": userID}, update, opts)
	return err
}

// SpendPoints debits spent points. The business-rule balance check
// happens in the service; this is the atomic counter bump.
func (r *ProfilesRepo) SpendPoints(ctx context.Context, userID string, amount int) error {
	update := bson.M{
		"$inc": bson.M{"points_spent": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListProfilesByPoints returns every ledger ordered by lifetime points
// descending. Ties keep the retrieval order.
func (r *ProfilesRepo) ListProfilesByPoints(ctx context.Context) ([]*model.UserProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "total_points_earned", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.UserProfile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountRicherProfiles counts profiles with strictly more lifetime
// points
func (r *ProfilesRepo) CountRicherProfiles(ctx context.Context, points int) (int, error) {
	filter := bson.M{"total_points_earned": bson.M{"$gt": points}}
	count, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
