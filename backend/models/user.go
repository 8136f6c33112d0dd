package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // bcrypt hash
	// Courses the user owns; membership gates lesson completion.
	PurchasedCourses []primitive.ObjectID `bson:"purchasedCourses" json:"purchasedCourses"`
	// Completed lessons keyed by course id (hex).
	CompletedLessons map[string][]primitive.ObjectID `bson:"completedLessons" json:"completedLessons"`
}

type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // bcrypt hash
}
