// Package models contains data structures for the application's domain models.
package models

// QuizOption is a single selectable answer for a quiz question.
type QuizOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// QuizQuestion is one question of the fixed quiz. The correct option value
// is never serialized to clients.
type QuizQuestion struct {
	Name    string       `json:"name"`
	Prompt  string       `json:"prompt"`
	Options []QuizOption `json:"options"`
	Correct string       `json:"-"`
}

// QuizResult is the outcome of grading one submission.
type QuizResult struct {
	CorrectCount int    `json:"correct_count"`
	Total        int    `json:"total"`
	Awarded      int    `json:"awarded"`
	Score        int    `json:"score"`
	Message      string `json:"message"`
	Passed       bool   `json:"passed"`
}
