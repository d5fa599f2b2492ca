// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import (
	"fmt"
	"strings"
)

// Problem is a single input defect found before any calculator runs.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by [Calculate] when the candidate or the
// collection snapshot is malformed. No breakdown accompanies it.
type ValidationError struct {
	Problems []Problem
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Field+": "+p.Message)
	}
	return "scoring: invalid input: " + strings.Join(parts, "; ")
}

// problems collects [Problem] values with the same fluent shape as validate.Validator.
type problems struct {
	list []Problem
}

func (p *problems) addf(field, format string, args ...any) {
	p.list = append(p.list, Problem{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (p *problems) err() error {
	if len(p.list) == 0 {
		return nil
	}
	return &ValidationError{Problems: p.list}
}
