package services

import (
	"context"
	"errors"

	"horsera/backend/models"
	"horsera/backend/repository"
	"horsera/backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressService tracks course purchases and per-course lesson completion.
// Mutations serialize per username: the purchase and completion checks are
// read-check-write over one user document, and concurrent requests for the
// same user must not both pass the check.
type ProgressService struct {
	store *repository.Store
	locks utils.KeyedMutex
}

func NewProgressService(store *repository.Store) *ProgressService {
	return &ProgressService{store: store}
}

// Purchase adds the course to the user's purchased set. Repurchasing is not
// an error; the second call reports already=true and changes nothing.
func (s *ProgressService) Purchase(ctx context.Context, username string, courseID primitive.ObjectID) (already bool, err error) {
	unlock := s.locks.Lock(username)
	defer unlock()

	if _, err := s.store.Courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrCourseNotFound
		}
		return false, err
	}

	user, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, err
	}

	if containsID(user.PurchasedCourses, courseID) {
		return true, nil
	}

	user.PurchasedCourses = append(user.PurchasedCourses, courseID)
	return false, s.store.Users.Replace(ctx, user)
}

// HasPurchased is the membership test behind the check-purchase endpoint.
func (s *ProgressService) HasPurchased(ctx context.Context, username string, courseID primitive.ObjectID) (bool, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, err
	}
	return containsID(user.PurchasedCourses, courseID), nil
}

// PurchasedCourses resolves the user's purchased refs to full course
// documents.
func (s *ProgressService) PurchasedCourses(ctx context.Context, username string) ([]models.Course, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(user.PurchasedCourses) == 0 {
		return []models.Course{}, nil
	}
	courses, err := s.store.Courses.FindByIDs(ctx, user.PurchasedCourses)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// CompleteLesson appends the lesson to the user's per-course completion
// list, creating the list on first completion. Requires ownership of the
// course; completing the same lesson twice is rejected.
func (s *ProgressService) CompleteLesson(ctx context.Context, username string, courseID, lessonID primitive.ObjectID) error {
	unlock := s.locks.Lock(username)
	defer unlock()

	user, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if !containsID(user.PurchasedCourses, courseID) {
		return ErrNotPurchased
	}

	key := courseID.Hex()
	if containsID(user.CompletedLessons[key], lessonID) {
		return ErrLessonAlreadyCompleted
	}

	if user.CompletedLessons == nil {
		user.CompletedLessons = map[string][]primitive.ObjectID{}
	}
	user.CompletedLessons[key] = append(user.CompletedLessons[key], lessonID)
	return s.store.Users.Replace(ctx, user)
}

// CompletedLessons resolves the user's completed lesson ids for a course.
// Returns an empty slice when nothing is recorded for the course.
func (s *ProgressService) CompletedLessons(ctx context.Context, username string, courseID primitive.ObjectID) ([]models.Lesson, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if !containsID(user.PurchasedCourses, courseID) {
		return nil, ErrNotPurchased
	}

	ids := user.CompletedLessons[courseID.Hex()]
	if len(ids) == 0 {
		return []models.Lesson{}, nil
	}

	lessons, err := s.store.Lessons.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	return lessons, nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
