package repository

import (
	"context"
	"errors"

	"horsera/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned whenever a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// UserRepository holds user accounts together with their purchased-course
// refs and per-course completion lists. The Pull/Unset operations target
// every matching user and are idempotent, which lets cascade steps be
// retried after a partial failure.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Replace(ctx context.Context, user *models.User) error
	PullPurchasedCourse(ctx context.Context, courseID primitive.ObjectID) error
	UnsetCompletedCourse(ctx context.Context, courseID primitive.ObjectID) error
	PullCompletedLesson(ctx context.Context, courseID, lessonID primitive.ObjectID) error
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) error
}

type CourseRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	Insert(ctx context.Context, course *models.Course) error
	Replace(ctx context.Context, course *models.Course) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	PushLesson(ctx context.Context, courseID, lessonID primitive.ObjectID) error
	PullLesson(ctx context.Context, courseID, lessonID primitive.ObjectID) error
}

type LessonRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lesson, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Lesson, error)
	Insert(ctx context.Context, lesson *models.Lesson) error
	Replace(ctx context.Context, lesson *models.Lesson) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error
}

// Store bundles the four entity repositories.
type Store struct {
	Users   UserRepository
	Admins  AdminRepository
	Courses CourseRepository
	Lessons LessonRepository
}
