package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference.
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL003 - Required field: A required field is missing
//	         Action: Add the missing column to your CSV header
//
//	VAL006 - Invalid value: A field value was rejected
//	         Action: Check the allowed values for this field
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: Request body exceeds the size limit
//	          Action: Split the file into smaller chunks
//	          Patterns: "request body too large"
//
//	FILE002 - Invalid CSV: File is not a valid CSV
//	          Action: Ensure file is comma-separated with consistent columns
//	          Patterns: "invalid csv"
//
//	FILE005 - Empty file: The uploaded file is empty
//	          Action: Please send a CSV file with a header line
//
// # Schema Errors (SCH001-SCH099)
//
//	SCH001 - Schema not found: No schema is registered under that name
//	         Action: Verify the record type in the URL
//	         Patterns: "schema not found"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled
//	         Patterns: "context canceled"
//
//	REQ002 - Request timeout
//	         Patterns: "context deadline exceeded"
//
//	REQ003 - Unsupported media type: Body is not sent as text/csv
//	         Patterns: "only accepts content-type"
//
//	REQ004 - Not acceptable: Client does not accept JSON responses
//	         Patterns: "only accepts accept"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check application logs for the original
// technical error.
//
// Typed errors (ValidationError, MalformedInputError, ErrSchemaNotFound) are
// matched first; the pattern table is consulted for everything else. Patterns
// are matched case-insensitively using strings.Contains and the first match
// wins.

import (
	"errors"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgRequiredField = UserMessage{
		Message: "A required field is missing",
		Action:  "Add the missing column to your CSV header",
		Code:    "VAL003",
	}
	msgInvalidValue = UserMessage{
		Message: "A field value was rejected",
		Action:  "Check the allowed values for this field",
		Code:    "VAL006",
	}
	msgInvalidCSV = UserMessage{
		Message: "File is not a valid CSV",
		Action:  "Ensure file is comma-separated with consistent columns",
		Code:    "FILE002",
	}
	msgEmptyFile = UserMessage{
		Message: "The uploaded file is empty",
		Action:  "Please send a CSV file with a header line",
		Code:    "FILE005",
	}
	msgSchemaNotFound = UserMessage{
		Message: "No Processor found",
		Action:  "Verify the record type in the URL",
		Code:    "SCH001",
	}
)

var errorPatterns = []errorPattern{
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds maximum size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{pattern: "invalid csv", msg: msgInvalidCSV},
	{pattern: "schema not found", msg: msgSchemaNotFound},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try sending a smaller file or check your connection",
			Code:    "REQ002",
		},
	},
	{
		pattern: "only accepts content-type",
		msg: UserMessage{
			Message: "Unsupported content type",
			Action:  "Send the file with Content-Type: text/csv",
			Code:    "REQ003",
		},
	},
	{
		pattern: "only accepts accept",
		msg: UserMessage{
			Message: "Response format not available",
			Action:  "Allow application/json in the Accept header",
			Code:    "REQ004",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return validationMessage(ve.Row)
	}
	var re *RowError
	if errors.As(err, &re) {
		return validationMessage(re)
	}
	if errors.Is(err, ErrEmptyInput) {
		return msgEmptyFile
	}
	var me *MalformedInputError
	if errors.As(err, &me) {
		return msgInvalidCSV
	}
	if errors.Is(err, ErrSchemaNotFound) {
		return msgSchemaNotFound
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// validationMessage picks the code of the first field error and uses the
// joined field messages as the message.
func validationMessage(re *RowError) UserMessage {
	msg := msgInvalidValue
	if len(re.Errors) > 0 && re.Errors[0].Kind == RequiredFieldMissing {
		msg = msgRequiredField
	}
	if text := re.Error(); text != "" {
		msg.Message = text
	}
	return msg
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
