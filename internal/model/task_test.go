package model

import (
	"errors"
	"testing"
)

func TestTaskValidate(t *testing.T) {
	valid := Task{ID: "t1", Title: "buy groceries", Date: "2024-05-01"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	cases := []struct {
		name string
		task Task
	}{
		{"missing id", Task{Title: "x", Date: "2024-05-01"}},
		{"missing title", Task{ID: "t1", Date: "2024-05-01"}},
		{"blank title", Task{ID: "t1", Title: "   ", Date: "2024-05-01"}},
		{"bad date", Task{ID: "t1", Title: "x", Date: "2024-5-1"}},
	}
	for _, tc := range cases {
		if err := tc.task.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestTaskValidateDateSentinel(t *testing.T) {
	task := Task{ID: "t1", Title: "x", Date: "not-a-date"}
	if err := task.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
