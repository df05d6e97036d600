package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidFilter   = "INVALID_FILTER"
	ErrCodeInvalidBudget   = "INVALID_BUDGET"
	ErrCodeInvalidPriority = "INVALID_PRIORITY"
	ErrCodeMissingColumn   = "MISSING_COLUMN"
	ErrCodeEmptyCatalog    = "EMPTY_CATALOG"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidBudget   = NewDomainError(ErrCodeInvalidBudget, "Budget must be one of: budget, mid-range, premium, luxury")
	ErrInvalidPriority = NewDomainError(ErrCodeInvalidPriority, "Priority must be one of: value, rating, reviews, battery")
	ErrEmptyCatalog    = NewDomainError(ErrCodeEmptyCatalog, "Catalog contains no rows")
)
