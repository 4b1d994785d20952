package demo

import (
	"errors"

	"github.com/compose-network/filedemo/internal/outcome"
)

type (
	// Document is the structured artifact. It is always loaded and saved
	// whole.
	Document struct {
		Students    []Student `json:"students"`
		CreatedDate string    `json:"created_date"`
		LastUpdated string    `json:"last_updated,omitempty"`
	}

	Student struct {
		Name    string  `json:"name"`
		Grade   float64 `json:"grade"`
		Subject string  `json:"subject"`
	}
)

const missingFileName = "nonexistent.txt"

var (
	sampleLines = []string{
		"Welcome to Go File Handling!",
		"This is line 2",
		"This is line 3",
		"Go makes file handling easy!",
	}

	seedStudents = []Student{
		{Name: "Alice", Grade: 95, Subject: "Go"},
		{Name: "Bob", Grade: 87, Subject: "Go"},
		{Name: "Charlie", Grade: 92, Subject: "Go"},
	}

	newStudent = Student{Name: "Diana", Grade: 89, Subject: "Go"}

	writtenLines = []string{
		"This is a new file created by filedemo!",
	}

	appendedLines = []string{
		"This line was appended!",
		"Go file handling is awesome!",
	}
)

// validate rejects documents that decoded cleanly but lack required keys.
func (d *Document) validate() error {
	var errs []error
	if d.Students == nil {
		errs = append(errs, errors.New("students is missing"))
	}
	if d.CreatedDate == "" {
		errs = append(errs, errors.New("created_date is missing"))
	}
	return outcome.Malformed(errors.Join(errs...))
}
