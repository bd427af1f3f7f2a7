package weather

// Fixed user-facing messages. Upstream detail (status codes, transport
// errors) is logged but never surfaced to callers.
const (
	msgSearchFailed = "Failed to search for cities. Please try again."
	msgFetchFailed  = "Failed to fetch weather data. Please try again."
	msgInvalidData  = "Invalid weather data received"
)

// UpstreamError covers any failure talking to the geocoding or forecast
// APIs. HTTP and transport failures collapse to the same user-facing
// message; Status and Err are retained for logging only.
type UpstreamError struct {
	Message string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidDataError means the upstream returned a structurally incomplete
// response.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string { return e.Message }
