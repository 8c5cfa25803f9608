package repository

import (
	"context"
	"main/model"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CyclicTasksRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for CyclicTasksRepo
func GetCyclicTasksRepo(client *mongo.Client) *CyclicTasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("CYCLIC_TASKS_COLLECTION")
	return &CyclicTasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateCyclicTask links a recurrence marker to its base task
func (r *CyclicTasksRepo) CreateCyclicTask(ctx context.Context, ct *model.CyclicTask) error {
	_, err := r.MongoCollection.InsertOne(ctx, ct)
	return err
}

// GetCyclicByTask returns the marker for a task, nil when the task is
// not cyclic
func (r *CyclicTasksRepo) GetCyclicByTask(ctx context.Context, taskID string) (*model.CyclicTask, error) {
	var ct model.CyclicTask
	err := r.MongoCollection.FindOne(ctx, bson.M{"task_id": taskID}).Decode(&ct)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
