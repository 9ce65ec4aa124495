package schema

// StatusSuccess is the status every successful Envelope carries
const StatusSuccess = "success"

// TimestampLayout is the layout of the Envelope timestamp
const TimestampLayout = "2006-01-02 15:04:05"

// Envelope represents the outer structure of every successful API response
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}
