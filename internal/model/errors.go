package model

import "errors"

// ErrEmptyInput is returned when a design or regulatory text is empty or
// whitespace-only. It is raised before any extraction work; callers test for
// it with errors.Is.
var ErrEmptyInput = errors.New("empty input text")
