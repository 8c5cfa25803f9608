package repository

import (
	"context"
	"errors"
	"main/middleware"
	"main/model"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for TasksRepo
func GetTasksRepo(client *mongo.Client) *TasksRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("TASKS_COLLECTION")
	return &TasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateTask adds a new task
func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	if task.UserID == "" {
		return errors.New("user ID is required")
	}
	_, err := r.MongoCollection.InsertOne(ctx, task)
	return err
}

// GetTaskByID retrieves a task scoped to its owner. Returns nil when
// the task does not exist or belongs to someone else.
func (r *TasksRepo) GetTaskByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	filter := bson.M{
		"_id":     taskID,
		"user_id": userID,
	}

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetUserTasks retrieves all tasks for a user
func (r *TasksRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return r.findTasks(ctx, bson.M{"user_id": userID})
}

// GetDoneTasks gets all completed tasks for a user
func (r *TasksRepo) GetDoneTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	filter := bson.M{
		"user_id": userID,
		"status":  model.StatusDone,
	}
	return r.findTasks(ctx, filter)
}

// DoneTasksBetween gets the user's completed tasks whose end date falls
// in [from, to)
func (r *TasksRepo) DoneTasksBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error) {
	filter := bson.M{
		"user_id": userID,
		"status":  model.StatusDone,
		"end_date": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
	return r.findTasks(ctx, filter)
}

// UpdateTask updates a specific task
func (r *TasksRepo) UpdateTask(ctx context.Context, taskID, userID string, task *model.Task) error {
	filter := bson.M{
		"_id":     taskID,
		"user_id": userID, // Ensure user owns this task
	}

	update := bson.M{
		"$set": bson.M{
			"title":         task.Title,
			"description":   task.Description,
			"category":      task.Category,
			"location":      task.Location,
			"start_date":    task.StartDate,
			"end_date":      task.EndDate,
			"priority":      task.Priority,
			"points":        task.Points,
			"status":        task.Status,
			"reminder_date": task.ReminderDate,
			"updated_at":    time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("task not found")
	}
	return nil
}

// DeleteTask removes a specific task
func (r *TasksRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	filter := bson.M{
		"_id":     taskID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("task not found")
	}
	return nil
}

// CompleteTask flips a task to done with its recomputed points. The
// filter doubles as a compare-and-set on status, so of two concurrent
// completions only one matches; the loser gets nil.
func (r *TasksRepo) CompleteTask(ctx context.Context, taskID, userID string, points int, now time.Time) (*model.Task, error) {
	defer middleware.TrackDBOperation("complete", r.MongoCollection.Name()).ObserveDuration()

	filter := bson.M{
		"_id":     taskID,
		"user_id": userID,
		"status": bson.M{
			"$in": []model.Status{model.StatusPending, model.StatusInProgress, model.StatusOverdue},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     model.StatusDone,
			"points":     points,
			"updated_at": now,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task model.Task
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// SweepOverdue expires the user's open tasks whose end date passed.
// Tasks without an end date never match.
func (r *TasksRepo) SweepOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	filter := overdueFilter(now)
	filter["user_id"] = userID
	return r.sweep(ctx, filter, now)
}

// SweepAllOverdue is the scheduler-driven sweep across every owner
func (r *TasksRepo) SweepAllOverdue(ctx context.Context, now time.Time) (int64, error) {
	return r.sweep(ctx, overdueFilter(now), now)
}

// DueReminders lists the user's open tasks whose reminder date passed
func (r *TasksRepo) DueReminders(ctx context.Context, userID string, now time.Time) ([]*model.Task, error) {
	filter := bson.M{
		"user_id": userID,
		"status": bson.M{
			"$in": []model.Status{model.StatusPending, model.StatusInProgress},
		},
		"reminder_date": bson.M{"$lte": now},
	}
	return r.findTasks(ctx, filter)
}

func (r *TasksRepo) findTasks(ctx context.Context, filter bson.M) ([]*model.Task, error) {
	var tasks []*model.Task
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TasksRepo) sweep(ctx context.Context, filter bson.M, now time.Time) (int64, error) {
	defer middleware.TrackDBOperation("sweep", r.MongoCollection.Name()).ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"status":     model.StatusOverdue,
			"updated_at": now,
		},
	}
	result, err := r.MongoCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func overdueFilter(now time.Time) bson.M {
	return bson.M{
		"status": bson.M{
			"$in": []model.Status{model.StatusPending, model.StatusInProgress},
		},
		"end_date": bson.M{"$lt": now},
	}
}
