package demo

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/compose-network/filedemo/internal/guard"
	"github.com/compose-network/filedemo/internal/outcome"
)

// TextReadout holds what the three text reads produced.
type TextReadout struct {
	Whole    string
	Numbered []string
	Lines    []string
	Results  []outcome.Result
}

// CreateArtifacts writes the text artifact and the structured document,
// replacing any existing files.
func (r *Runner) CreateArtifacts() outcome.Result {
	textPath, jsonPath := r.textPath(), r.structuredPath()

	if err := r.textWriter.WriteLines(textPath, sampleLines...); err != nil {
		r.printf("Error creating %s: %v\n", textPath, err)
		return r.record("create-artifacts", outcome.Failure(err, "Error creating %s: %v", textPath, err))
	}

	doc := Document{
		Students:    slices.Clone(seedStudents),
		CreatedDate: timestamp(r.now()),
	}
	if err := r.jsonWriter.WriteJSON(jsonPath, doc); err != nil {
		r.printf("Error creating %s: %v\n", jsonPath, err)
		return r.record("create-artifacts", outcome.Failure(err, "Error creating %s: %v", jsonPath, err))
	}

	return r.record("create-artifacts", outcome.Success("Created %s and %s", textPath, jsonPath))
}

// ReadText reads the text artifact whole, line by line and into a slice.
// Each read is attempted on its own.
func (r *Runner) ReadText() TextReadout {
	path := r.textPath()
	var readout TextReadout

	r.printf("=== Reading Text File ===\n")

	whole, err := r.textReader.ReadAll(path)
	if err != nil {
		readout.Results = append(readout.Results, r.readFailure("read-whole", path, err))
	} else {
		readout.Whole = whole
		r.printf("Entire file content:\n%s\n", whole)
		readout.Results = append(readout.Results, r.record("read-whole", outcome.Success("Read %d bytes", len(whole))))
	}

	r.printf("\nReading line by line:\n")
	err = r.textReader.EachLine(path, func(num int, line string) {
		readout.Numbered = append(readout.Numbered, line)
		r.printf("Line %d: %s\n", num, strings.TrimSpace(line))
	})
	if err != nil {
		readout.Results = append(readout.Results, r.readFailure("read-numbered", path, err))
	} else {
		readout.Results = append(readout.Results, r.record("read-numbered", outcome.Success("Read %d numbered lines", len(readout.Numbered))))
	}

	lines, err := r.textReader.ReadLines(path)
	if err != nil {
		readout.Results = append(readout.Results, r.readFailure("read-lines", path, err))
	} else {
		readout.Lines = lines
		r.printf("\nTotal lines read: %d\n", len(lines))
		readout.Results = append(readout.Results, r.record("read-lines", outcome.Success("Total lines read: %d", len(lines))))
	}

	return readout
}

func (r *Runner) readFailure(step, path string, err error) outcome.Result {
	var result outcome.Result
	if outcome.Classify(err) == outcome.NotFound {
		result = outcome.Failure(err, "Error: %s not found!", filepath.Base(path))
	} else {
		result = outcome.Unexpected(err, "An error occurred: %v", err)
	}
	r.printf("%s\n", result)
	return r.record(step, result)
}

// WriteAndAppend creates the output artifact, appends to it and reads it
// back. It returns the content read back.
func (r *Runner) WriteAndAppend() (string, outcome.Result) {
	path := r.outputPath()
	r.printf("\n=== Writing and Appending to Files ===\n")

	content, err := r.writeAndAppend(path)
	if err != nil {
		result := outcome.Unexpected(err, "Error writing to file: %v", err)
		r.printf("%s\n", result)
		return "", r.record("write-append", result)
	}

	r.printf("Contents of %s:\n%s\n", filepath.Base(path), content)
	return content, r.record("write-append", outcome.Success("Wrote and appended %d lines", len(writtenLines)+1+len(appendedLines)))
}

func (r *Runner) writeAndAppend(path string) (string, error) {
	created := "Created on: " + r.now().Format("2006-01-02 15:04:05.000000")
	if err := r.textWriter.WriteLines(path, append(slices.Clone(writtenLines), created)...); err != nil {
		return "", err
	}
	if err := r.textWriter.AppendLines(path, appendedLines...); err != nil {
		return "", err
	}
	return r.textReader.ReadAll(path)
}

// UpdateStructured loads the document, lists its records, appends one and
// rewrites the whole document.
func (r *Runner) UpdateStructured() (Document, outcome.Result) {
	path := r.structuredPath()
	r.printf("\n=== JSON File Handling ===\n")

	doc, err := r.updateStructured(path)
	if err != nil {
		var result outcome.Result
		switch outcome.Classify(err) {
		case outcome.NotFound:
			result = outcome.Failure(err, "JSON file not found!")
		case outcome.MalformedContent:
			result = outcome.Failure(err, "Error: Invalid JSON format!")
		default:
			result = outcome.Unexpected(err, "Error handling JSON: %v", err)
		}
		r.printf("%s\n", result)
		return Document{}, r.record("structured-update", result)
	}

	r.printf("Added new student %s to the JSON file!\n", newStudent.Name)
	return doc, r.record("structured-update", outcome.Success("Document now holds %d students", len(doc.Students)))
}

func (r *Runner) updateStructured(path string) (Document, error) {
	var doc Document
	if err := r.jsonReader.ReadJSON(path, &doc); err != nil {
		return Document{}, err
	}
	if err := doc.validate(); err != nil {
		return Document{}, fmt.Errorf("invalid document %s: %w", path, err)
	}

	r.printf("Student data from JSON:\n")
	for _, s := range doc.Students {
		r.printf("- %s: %g in %s\n", s.Name, s.Grade, s.Subject)
	}

	doc.Students = append(doc.Students, newStudent)
	doc.LastUpdated = r.stampAfter(doc.CreatedDate)

	if err := r.jsonWriter.WriteJSON(path, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Demonstrate runs the guarded operations against fixed inputs.
func (r *Runner) Demonstrate() []outcome.Result {
	r.printf("\n=== Error Handling Examples ===\n")

	var results []outcome.Result
	show := func(step string, result outcome.Result) {
		r.printf("%s\n", result)
		results = append(results, r.record(step, result))
	}

	show("divide 10/2", guard.Divide(10, 2))
	show("divide 10/0", guard.Divide(10, 0))
	show(`divide "10"/2`, guard.Divide("10", 2))

	sample := []int{1, 2, 3, 4, 5}
	show("index 2", guard.ElementAt(sample, 2))
	show("index 10", guard.ElementAt(sample, 10))

	reader := guard.NewScopedReader(r.opener)
	reader.Closed = func(path string) {
		r.printf("File handle for '%s' closed.\n", path)
	}
	for _, path := range []string{r.textPath(), r.cfg.Resolve(missingFileName)} {
		show("scoped-read "+filepath.Base(path), reader.ReadLength(path))
	}

	return results
}
