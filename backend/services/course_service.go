package services

import (
	"context"
	"errors"

	"horsera/backend/models"
	"horsera/backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseService owns course and lesson lifecycle, including the cascading
// cleanup that keeps user and course references consistent when documents
// are deleted.
type CourseService struct {
	store *repository.Store
}

func NewCourseService(store *repository.Store) *CourseService {
	return &CourseService{store: store}
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) (primitive.ObjectID, error) {
	if course.CourseLessons == nil {
		course.CourseLessons = []primitive.ObjectID{}
	}
	if err := s.store.Courses.Insert(ctx, course); err != nil {
		return primitive.NilObjectID, err
	}
	return course.ID, nil
}

// UpdateCourse is a full-document replace by id. The stored lesson list is
// kept; edits cannot detach lessons.
func (s *CourseService) UpdateCourse(ctx context.Context, id primitive.ObjectID, course *models.Course) error {
	existing, err := s.store.Courses.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	course.ID = id
	course.CourseLessons = existing.CourseLessons
	return s.store.Courses.Replace(ctx, course)
}

// AddLesson creates the lesson and appends its ref to the course's list.
func (s *CourseService) AddLesson(ctx context.Context, courseID primitive.ObjectID, lesson *models.Lesson) (primitive.ObjectID, error) {
	if _, err := s.store.Courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrCourseNotFound
		}
		return primitive.NilObjectID, err
	}

	lesson.CourseID = courseID
	if err := s.store.Lessons.Insert(ctx, lesson); err != nil {
		return primitive.NilObjectID, err
	}
	if err := s.store.Courses.PushLesson(ctx, courseID, lesson.ID); err != nil {
		return primitive.NilObjectID, err
	}
	return lesson.ID, nil
}

func (s *CourseService) UpdateLesson(ctx context.Context, id primitive.ObjectID, lesson *models.Lesson) error {
	existing, err := s.store.Lessons.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLessonNotFound
	}
	if err != nil {
		return err
	}

	lesson.ID = id
	lesson.CourseID = existing.CourseID
	return s.store.Lessons.Replace(ctx, lesson)
}

// GetCourse returns the course with its lesson refs resolved, in list order.
func (s *CourseService) GetCourse(ctx context.Context, id primitive.ObjectID) (*models.CourseDetail, error) {
	course, err := s.store.Courses.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.resolveLessons(ctx, course)
}

// ListCourses returns all courses with lesson refs unresolved.
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.store.Courses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// ListCoursesDetailed returns all courses with lessons resolved, for the
// admin browse view.
func (s *CourseService) ListCoursesDetailed(ctx context.Context) ([]models.CourseDetail, error) {
	courses, err := s.store.Courses.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.CourseDetail, 0, len(courses))
	for i := range courses {
		d, err := s.resolveLessons(ctx, &courses[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// DeleteCourse removes the course and then runs the cleanup cascade. Each
// step is idempotent, so a retried cascade after a partial failure converges
// to the same end state.
func (s *CourseService) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	err := s.store.Courses.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	if err := s.store.Users.PullPurchasedCourse(ctx, id); err != nil {
		return err
	}
	if err := s.store.Lessons.DeleteByCourse(ctx, id); err != nil {
		return err
	}
	return s.store.Users.UnsetCompletedCourse(ctx, id)
}

// DeleteLesson removes the lesson, pulls its ref from the owning course and
// removes it from every user's completion list for that course, dropping
// per-course entries that become empty.
func (s *CourseService) DeleteLesson(ctx context.Context, id primitive.ObjectID) error {
	lesson, err := s.store.Lessons.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLessonNotFound
	}
	if err != nil {
		return err
	}

	if err := s.store.Lessons.DeleteByID(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.store.Courses.PullLesson(ctx, lesson.CourseID, id); err != nil {
		return err
	}
	return s.store.Users.PullCompletedLesson(ctx, lesson.CourseID, id)
}

func (s *CourseService) resolveLessons(ctx context.Context, course *models.Course) (*models.CourseDetail, error) {
	lessons, err := s.store.Lessons.FindByIDs(ctx, course.CourseLessons)
	if err != nil {
		return nil, err
	}

	// The store does not guarantee $in order; sort back into list order.
	pos := make(map[primitive.ObjectID]int, len(course.CourseLessons))
	for i, id := range course.CourseLessons {
		pos[id] = i
	}
	ordered := make([]models.Lesson, len(course.CourseLessons))
	seen := 0
	for _, l := range lessons {
		if i, ok := pos[l.ID]; ok {
			ordered[i] = l
			seen++
		}
	}
	if seen < len(ordered) {
		// Drop holes left by refs to missing lessons.
		compact := make([]models.Lesson, 0, seen)
		for _, l := range ordered {
			if !l.ID.IsZero() {
				compact = append(compact, l)
			}
		}
		ordered = compact
	}

	return &models.CourseDetail{Course: *course, Lessons: ordered}, nil
}
