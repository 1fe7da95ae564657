package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name: "required field uses row messages",
			err: &ValidationError{Schema: "product", Row: &RowError{Line: 2, Errors: []FieldError{
				{Kind: RequiredFieldMissing, Field: "price_type", Message: "`price_type` is a required field"},
			}}},
			wantCode:    "VAL003",
			wantMessage: "`price_type` is a required field",
		},
		{
			name: "hook rejection joins all messages",
			err: &ValidationError{Schema: "product", Row: &RowError{Line: 2, Errors: []FieldError{
				{Kind: FieldValidationFailed, Field: "price", Message: "`price` must be a number"},
				{Kind: RequiredFieldMissing, Field: "price_type", Message: "`price_type` is a required field"},
			}}},
			wantCode:    "VAL006",
			wantMessage: "`price` must be a number, `price_type` is a required field",
		},
		{
			name:        "empty input",
			err:         &MalformedInputError{Reason: "no header line", Err: ErrEmptyInput},
			wantCode:    "FILE005",
			wantMessage: "The uploaded file is empty",
		},
		{
			name:        "ragged row",
			err:         malformed(3, "row has 3 fields, header has 2"),
			wantCode:    "FILE002",
			wantMessage: "File is not a valid CSV",
		},
		{
			name:        "wrapped schema not found",
			err:         fmt.Errorf("%w: %q", ErrSchemaNotFound, "order"),
			wantCode:    "SCH001",
			wantMessage: "No Processor found",
		},
		{
			name:        "body too large maps correctly",
			err:         errors.New("http: request body too large"),
			wantCode:    "FILE001",
			wantMessage: "File exceeds maximum size limit",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "deadline maps correctly",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "REQ002",
			wantMessage: "Request timed out",
		},
		{
			name:        "unsupported media type",
			err:         errors.New("only accepts Content-Type: text/csv"),
			wantCode:    "REQ003",
			wantMessage: "Unsupported content type",
		},
		{
			name:        "not acceptable",
			err:         errors.New("only accepts Accept: application/json"),
			wantCode:    "REQ004",
			wantMessage: "Response format not available",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("RATE LIMIT hit"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"malformed", malformed(0, "bad"), true},
		{"unknown", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapError_AllCodesDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, ep := range errorPatterns {
		if prev, ok := seen[ep.msg.Code]; ok && prev != ep.msg.Message {
			t.Errorf("code %s used for %q and %q", ep.msg.Code, prev, ep.msg.Message)
		}
		seen[ep.msg.Code] = ep.msg.Message
		if ep.pattern != strings.ToLower(ep.pattern) {
			t.Errorf("pattern %q must be lowercase", ep.pattern)
		}
	}
}
