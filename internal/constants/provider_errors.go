package constants

// Provider Error Codes
// These constants classify every failure shape an upstream data provider can
// produce. Adapters map raw payloads to exactly one of these at their
// boundary so nothing downstream inspects provider-specific shapes.

const (
	// Expected absence: the lookup worked but there is nothing to show.
	ErrCodeNotFound = "NOT_FOUND"

	// The provider is reachable but has no current data for the key, e.g.
	// an aircraft on the ground or out of receiver coverage.
	ErrCodeUnavailable = "UNAVAILABLE"

	// Missing or malformed caller input.
	ErrCodeInputError = "INPUT_ERROR"

	// Missing provider credentials in the process environment.
	ErrCodeConfigError = "CONFIG_ERROR"

	// Network failure or 5xx from the provider.
	ErrCodeUpstreamError = "UPSTREAM_ERROR"
)

// ProviderErrorMessages maps error codes to their default human-readable
// messages. Adapters may override the message with provider-supplied text.
var ProviderErrorMessages = map[string]string{
	ErrCodeNotFound:      "Flight not found. Please check the flight number and try again.",
	ErrCodeUnavailable:   "Live data is not available for this aircraft right now",
	ErrCodeInputError:    "A required parameter is missing or invalid",
	ErrCodeConfigError:   "The data provider is not configured",
	ErrCodeUpstreamError: "Failed to fetch data from the upstream provider",
}

// GetErrorMessage returns the default message for an error code.
func GetErrorMessage(code string) string {
	if msg, exists := ProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
