package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageLink   string             `bson:"imageLink" json:"imageLink"`
	Published   bool               `bson:"published" json:"published"`
	// Lesson refs in insertion order.
	CourseLessons []primitive.ObjectID `bson:"courseLessons" json:"courseLessons"`
}

type Lesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID    primitive.ObjectID `bson:"courseId" json:"courseId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	LessonLink  string             `bson:"lessonLink" json:"lessonLink"`
}

// CourseDetail is a course with its lesson refs resolved to full documents.
type CourseDetail struct {
	Course
	Lessons []Lesson `json:"lessons"`
}
