package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horsera/backend/config"
	"horsera/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB and returns a handle on the configured database.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.MongoURL).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	db := client.Database(cfg.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// Usernames are the login identity, so both account collections get a
// unique index as the store-level backstop behind the signup check.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{"users", "admins"} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("mongo: index on %s: %w", name, err)
		}
	}
	return nil
}

// NewMongoStore builds a Store backed by the given database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:   &mongoUsers{col: db.Collection("users")},
		Admins:  &mongoAdmins{col: db.Collection("admins")},
		Courses: &mongoCourses{col: db.Collection("courses")},
		Lessons: &mongoLessons{col: db.Collection("lessons")},
	}
}

type mongoUsers struct {
	col *mongo.Collection
}

func (r *mongoUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUsers) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *mongoUsers) Replace(ctx context.Context, user *models.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUsers) PullPurchasedCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"purchasedCourses": courseID},
		bson.M{"$pull": bson.M{"purchasedCourses": courseID}},
	)
	return err
}

func (r *mongoUsers) UnsetCompletedCourse(ctx context.Context, courseID primitive.ObjectID) error {
	key := "completedLessons." + courseID.Hex()
	_, err := r.col.UpdateMany(ctx,
		bson.M{key: bson.M{"$exists": true}},
		bson.M{"$unset": bson.M{key: ""}},
	)
	return err
}

func (r *mongoUsers) PullCompletedLesson(ctx context.Context, courseID, lessonID primitive.ObjectID) error {
	key := "completedLessons." + courseID.Hex()
	_, err := r.col.UpdateMany(ctx,
		bson.M{key: lessonID},
		bson.M{"$pull": bson.M{key: lessonID}},
	)
	if err != nil {
		return err
	}
	// Drop per-course keys the pull emptied.
	_, err = r.col.UpdateMany(ctx,
		bson.M{key: bson.M{"$size": 0}},
		bson.M{"$unset": bson.M{key: ""}},
	)
	return err
}

type mongoAdmins struct {
	col *mongo.Collection
}

func (r *mongoAdmins) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *mongoAdmins) Insert(ctx context.Context, admin *models.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, admin)
	return err
}

type mongoCourses struct {
	col *mongo.Collection
}

func (r *mongoCourses) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *mongoCourses) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *mongoCourses) FindAll(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *mongoCourses) Insert(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, course)
	return err
}

func (r *mongoCourses) Replace(ctx context.Context, course *models.Course) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCourses) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCourses) PushLesson(ctx context.Context, courseID, lessonID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": courseID},
		bson.M{"$push": bson.M{"courseLessons": lessonID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCourses) PullLesson(ctx context.Context, courseID, lessonID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": courseID},
		bson.M{"$pull": bson.M{"courseLessons": lessonID}},
	)
	return err
}

type mongoLessons struct {
	col *mongo.Collection
}

func (r *mongoLessons) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lesson)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *mongoLessons) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Lesson, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var lessons []models.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *mongoLessons) Insert(ctx context.Context, lesson *models.Lesson) error {
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, lesson)
	return err
}

func (r *mongoLessons) Replace(ctx context.Context, lesson *models.Lesson) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": lesson.ID}, lesson)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoLessons) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoLessons) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"courseId": courseID})
	return err
}
