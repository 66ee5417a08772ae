package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Role   string `validate:"required,role"`
	Status string `validate:"required,connection_decision"`
}

func TestCustomValidator(t *testing.T) {
	cv := New()

	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "valid", input: sample{Role: "PATIENT", Status: "ACCEPTED"}},
		{name: "unknown role", input: sample{Role: "ADMIN", Status: "REJECTED"}, wantErr: "Role failed on role"},
		{name: "pending is not a decision", input: sample{Role: "CARETAKER", Status: "PENDING"}, wantErr: "Status failed on connection_decision"},
		{name: "both missing", input: sample{}, wantErr: "Role failed on required; Status failed on required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.Equal(t, tt.wantErr, Message(err))
		})
	}
}
