package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidRecord      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAccountType ErrorCode = "TRANSACTION_002"
	TransactionTooMany            ErrorCode = "TRANSACTION_003"
)

// Simulation error codes (SIMULATION_*)
const (
	SimulationInvalidHorizon ErrorCode = "SIMULATION_001"
	SimulationInvalidInput   ErrorCode = "SIMULATION_002"
)

// System error codes (SYSTEM_*). SYSTEM_004 is retired.
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid query parameter",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Amount must be a finite number",

	// Transaction errors
	TransactionInvalidRecord:      "Transaction record is invalid",
	TransactionInvalidAccountType: "Invalid account type (checking, credit, savings, income)",
	TransactionTooMany:            "Too many transactions in a single request",

	// Simulation errors
	SimulationInvalidHorizon: "Simulation horizon is out of the supported range",
	SimulationInvalidInput:   "Simulation parameters are invalid",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Audit store is unavailable",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
