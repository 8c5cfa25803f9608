package repository

import (
	"context"
	"errors"
	"main/model"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type WorkSessionsRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for WorkSessionsRepo
func GetWorkSessionsRepo(client *mongo.Client) *WorkSessionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("WORK_SESSIONS_COLLECTION")
	return &WorkSessionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateSession logs a work interval on a task
func (r *WorkSessionsRepo) CreateSession(ctx context.Context, ws *model.WorkSession) error {
	if ws.TaskID == "" {
		return errors.New("task ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, ws)
	return err
}

// GetTaskSessions lists the logged intervals for a task
func (r *WorkSessionsRepo) GetTaskSessions(ctx context.Context, taskID string) ([]*model.WorkSession, error) {
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"task_id": taskID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.WorkSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// DeleteSession removes a logged interval
func (r *WorkSessionsRepo) DeleteSession(ctx context.Context, sessionID, taskID string) error {
	filter := bson.M{
		"_id":     sessionID,
		"task_id": taskID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("work session not found")
	}
	return nil
}
