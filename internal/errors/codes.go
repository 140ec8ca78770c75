package errors

// Error codes for the calculator.
//
// Error code ranges:
// E0001-E0099: Input errors
// E0100-E0199: Arithmetic errors
// E0900-E0999: Tooling and configuration errors

const (
	// E0001: The input line could not be read
	ErrorReadFailure = "E0001"

	// E0002: The input line does not have exactly three parts
	ErrorTokenCount = "E0002"

	// E0100: Division with a zero divisor
	ErrorDivisionByZero = "E0100"

	// E0900: An environment setting could not be parsed
	ErrorInvalidConfig = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorReadFailure:
		return "Input line could not be read"
	case ErrorTokenCount:
		return "Input does not have an operand, an operator and a second operand"
	case ErrorDivisionByZero:
		return "Divisor is zero"
	case ErrorInvalidConfig:
		return "Configuration value is invalid"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Input"
	case code >= "E0100" && code < "E0200":
		return "Arithmetic"
	case code >= "E0900" && code < "E1000":
		return "Configuration"
	default:
		return "Unknown"
	}
}
