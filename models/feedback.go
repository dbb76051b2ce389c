package models

import "time"

// Feedback is an append-only rating and comment tied to one employee. Entries
// are never edited or deleted after creation.
type Feedback struct {
	ID         string    `json:"id"`
	EmployeeID int       `json:"employeeId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
}

// FeedbackCreate represents the request body for submitting feedback.
type FeedbackCreate struct {
	EmployeeID int    `json:"employeeId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
	Author     string `json:"author"`
}
