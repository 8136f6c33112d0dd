package repository

import (
	"context"
	"sync"

	"horsera/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStore builds a Store over process-local maps. Used by the test
// suite and the DB_DRIVER=memory dev mode; state is lost on exit.
func NewMemoryStore() *Store {
	s := &memoryState{
		users:   make(map[primitive.ObjectID]*models.User),
		admins:  make(map[primitive.ObjectID]*models.Admin),
		courses: make(map[primitive.ObjectID]*models.Course),
		lessons: make(map[primitive.ObjectID]*models.Lesson),
	}
	return &Store{
		Users:   &memoryUsers{s},
		Admins:  &memoryAdmins{s},
		Courses: &memoryCourses{s},
		Lessons: &memoryLessons{s},
	}
}

type memoryState struct {
	mu      sync.RWMutex
	users   map[primitive.ObjectID]*models.User
	admins  map[primitive.ObjectID]*models.Admin
	courses map[primitive.ObjectID]*models.Course
	lessons map[primitive.ObjectID]*models.Lesson
}

// Documents are copied on the way in and out so callers never share
// slices or maps with the store.
func copyUser(u *models.User) *models.User {
	cp := *u
	cp.PurchasedCourses = append([]primitive.ObjectID(nil), u.PurchasedCourses...)
	if u.CompletedLessons != nil {
		cp.CompletedLessons = make(map[string][]primitive.ObjectID, len(u.CompletedLessons))
		for k, v := range u.CompletedLessons {
			cp.CompletedLessons[k] = append([]primitive.ObjectID(nil), v...)
		}
	}
	return &cp
}

func copyCourse(c *models.Course) *models.Course {
	cp := *c
	cp.CourseLessons = append([]primitive.ObjectID(nil), c.CourseLessons...)
	return &cp
}

type memoryUsers struct {
	s *memoryState
}

func (r *memoryUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) Insert(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

func (r *memoryUsers) Replace(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.s.users[user.ID] = copyUser(user)
	return nil
}

func (r *memoryUsers) PullPurchasedCourse(_ context.Context, courseID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		u.PurchasedCourses = pullID(u.PurchasedCourses, courseID)
	}
	return nil
}

func (r *memoryUsers) UnsetCompletedCourse(_ context.Context, courseID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		delete(u.CompletedLessons, courseID.Hex())
	}
	return nil
}

func (r *memoryUsers) PullCompletedLesson(_ context.Context, courseID, lessonID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := courseID.Hex()
	for _, u := range r.s.users {
		list, ok := u.CompletedLessons[key]
		if !ok {
			continue
		}
		list = pullID(list, lessonID)
		if len(list) == 0 {
			delete(u.CompletedLessons, key)
		} else {
			u.CompletedLessons[key] = list
		}
	}
	return nil
}

func pullID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type memoryAdmins struct {
	s *memoryState
}

func (r *memoryAdmins) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAdmins) Insert(_ context.Context, admin *models.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	cp := *admin
	r.s.admins[admin.ID] = &cp
	return nil
}

type memoryCourses struct {
	s *memoryState
}

func (r *memoryCourses) FindByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCourse(c), nil
}

func (r *memoryCourses) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var courses []models.Course
	for _, id := range ids {
		if c, ok := r.s.courses[id]; ok {
			courses = append(courses, *copyCourse(c))
		}
	}
	return courses, nil
}

func (r *memoryCourses) FindAll(_ context.Context) ([]models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var courses []models.Course
	for _, c := range r.s.courses {
		courses = append(courses, *copyCourse(c))
	}
	return courses, nil
}

func (r *memoryCourses) Insert(_ context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	r.s.courses[course.ID] = copyCourse(course)
	return nil
}

func (r *memoryCourses) Replace(_ context.Context, course *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[course.ID]; !ok {
		return ErrNotFound
	}
	r.s.courses[course.ID] = copyCourse(course)
	return nil
}

func (r *memoryCourses) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.courses, id)
	return nil
}

func (r *memoryCourses) PushLesson(_ context.Context, courseID, lessonID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[courseID]
	if !ok {
		return ErrNotFound
	}
	c.CourseLessons = append(c.CourseLessons, lessonID)
	return nil
}

func (r *memoryCourses) PullLesson(_ context.Context, courseID, lessonID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.courses[courseID]; ok {
		c.CourseLessons = pullID(c.CourseLessons, lessonID)
	}
	return nil
}

type memoryLessons struct {
	s *memoryState
}

func (r *memoryLessons) FindByID(_ context.Context, id primitive.ObjectID) (*models.Lesson, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.lessons[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memoryLessons) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Lesson, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var lessons []models.Lesson
	for _, id := range ids {
		if l, ok := r.s.lessons[id]; ok {
			lessons = append(lessons, *l)
		}
	}
	return lessons, nil
}

func (r *memoryLessons) Insert(_ context.Context, lesson *models.Lesson) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
	}
	cp := *lesson
	r.s.lessons[lesson.ID] = &cp
	return nil
}

func (r *memoryLessons) Replace(_ context.Context, lesson *models.Lesson) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lessons[lesson.ID]; !ok {
		return ErrNotFound
	}
	cp := *lesson
	r.s.lessons[lesson.ID] = &cp
	return nil
}

func (r *memoryLessons) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lessons[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.lessons, id)
	return nil
}

func (r *memoryLessons) DeleteByCourse(_ context.Context, courseID primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, l := range r.s.lessons {
		if l.CourseID == courseID {
			delete(r.s.lessons, id)
		}
	}
	return nil
}
