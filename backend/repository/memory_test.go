package repository

import (
	"context"
	"testing"

	"horsera/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	course := &models.Course{Title: "Course"}
	require.NoError(t, store.Courses.Insert(ctx, course))
	require.NoError(t, store.Courses.PushLesson(ctx, course.ID, primitive.NewObjectID()))

	got, err := store.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)

	// Mutating the returned copy must not touch stored state.
	got.Title = "mutated"
	got.CourseLessons = append(got.CourseLessons, primitive.NewObjectID())

	again, err := store.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Course", again.Title)
	assert.Len(t, again.CourseLessons, 1)
}

func TestMemoryUsersNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Users.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Users.Replace(ctx, &models.User{ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPullCompletedLesson(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	courseID := primitive.NewObjectID()
	l1, l2 := primitive.NewObjectID(), primitive.NewObjectID()

	user := &models.User{
		Username: "alice",
		CompletedLessons: map[string][]primitive.ObjectID{
			courseID.Hex(): {l1, l2},
		},
	}
	require.NoError(t, store.Users.Insert(ctx, user))

	require.NoError(t, store.Users.PullCompletedLesson(ctx, courseID, l1))
	got, err := store.Users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{l2}, got.CompletedLessons[courseID.Hex()])

	// Pulling the last lesson drops the key.
	require.NoError(t, store.Users.PullCompletedLesson(ctx, courseID, l2))
	got, err = store.Users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	_, hasKey := got.CompletedLessons[courseID.Hex()]
	assert.False(t, hasKey)

	// Pulling again is a no-op.
	require.NoError(t, store.Users.PullCompletedLesson(ctx, courseID, l2))
}

func TestMemoryDeleteByCourse(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	courseID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	doomed1 := &models.Lesson{CourseID: courseID}
	doomed2 := &models.Lesson{CourseID: courseID}
	kept := &models.Lesson{CourseID: otherID}
	for _, l := range []*models.Lesson{doomed1, doomed2, kept} {
		require.NoError(t, store.Lessons.Insert(ctx, l))
	}

	require.NoError(t, store.Lessons.DeleteByCourse(ctx, courseID))

	for _, l := range []*models.Lesson{doomed1, doomed2} {
		_, err := store.Lessons.FindByID(ctx, l.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	// Lessons of other courses survive.
	_, err := store.Lessons.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
}
