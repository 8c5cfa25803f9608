package repository

import (
	"context"
	"main/model"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubTasksRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for SubTasksRepo
func GetSubTasksRepo(client *mongo.Client) *SubTasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("SUBTASKS_COLLECTION")
	return &SubTasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateSubTask adds one piece of a split task
func (r *SubTasksRepo) CreateSubTask(ctx context.Context, st *model.SubTask) error {
	_, err := r.MongoCollection.InsertOne(ctx, st)
	return err
}

// GetTaskSubTasks lists the pieces of a split task
func (r *SubTasksRepo) GetTaskSubTasks(ctx context.Context, taskID string) ([]*model.SubTask, error) {
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"task_id": taskID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subtasks []*model.SubTask
	if err = cursor.All(ctx, &subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}
