package repository

import (
	"context"
	"fmt"
	"log"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize collections
	tasksCollection := db.Collection(utils.GetEnvAsString("TASKS_COLLECTION", "tasks"))
	profilesCollection := db.Collection(utils.GetEnvAsString("PROFILES_COLLECTION", "profiles"))
	subtasksCollection := db.Collection(utils.GetEnvAsString("SUBTASKS_COLLECTION", "subtasks"))
	cyclicCollection := db.Collection(utils.GetEnvAsString("CYCLIC_TASKS_COLLECTION", "cyclic_tasks"))
	sessionsCollection := db.Collection(utils.GetEnvAsString("WORK_SESSIONS_COLLECTION", "work_sessions"))

	// Define indexes
	taskIndexes := []mongo.IndexModel{
		// User ID index
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
		// Status listing and overdue sweep
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "end_date", Value: 1},
			},
			Options: options.Index().
				SetName("user_status_end_date").
				SetUnique(false),
		},
		// Monthly ranking windows
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "end_date", Value: -1},
			},
			Options: options.Index().
				SetName("user_end_date"),
		},
	}

	profileIndexes := []mongo.IndexModel{
		// Leaderboard ordering
		{
			Keys: bson.D{{Key: "total_points_earned", Value: -1}},
			Options: options.Index().
				SetName("points_leaderboard"),
		},
	}

	childIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "task_id", Value: 1}},
			Options: options.Index().
				SetName("task_id_index"),
		},
	}

	// Create indexes for tasks
	_, err := tasksCollection.Indexes().CreateMany(ctx, taskIndexes)
	if err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}

	// Create indexes for profiles
	_, err = profilesCollection.Indexes().CreateMany(ctx, profileIndexes)
	if err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}

	// Create indexes for child records
	for _, coll := range []*mongo.Collection{subtasksCollection, cyclicCollection, sessionsCollection} {
		if _, err := coll.Indexes().CreateMany(ctx, childIndexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll.Name(), err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
