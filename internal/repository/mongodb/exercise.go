package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
	"github.com/fittrack/exercise-track-backend/internal/models"
	"github.com/fittrack/exercise-track-backend/internal/repository"
)

type ExerciseRepository struct {
	collection *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{collection: db.Collection(exercisesCollection)}
}

var _ repository.ExerciseRepository = (*ExerciseRepository)(nil)

func (r *ExerciseRepository) Insert(ctx context.Context, logEntry *models.ExerciseLog) error {
	if _, err := r.collection.InsertOne(ctx, logEntry); err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *ExerciseRepository) FindByUser(ctx context.Context, userID string, query repository.LogQuery) ([]models.ExerciseLog, error) {
	filter := bson.M{"user_id": userID}

	dateRange := bson.M{}
	if query.From != nil {
		dateRange["$gte"] = *query.From
	}
	if query.To != nil {
		dateRange["$lte"] = *query.To
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"date": 1}) // oldest first
	if query.Limit != nil {
		findOptions.SetLimit(*query.Limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, apperror.Store(err)
	}
	defer cursor.Close(ctx)

	logs := make([]models.ExerciseLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, apperror.Store(err)
	}
	return logs, nil
}
