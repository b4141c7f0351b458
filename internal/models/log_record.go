package models

// LogRecord is one successfully parsed access-log line. Records are ephemeral:
// they are produced per valid line and consumed immediately by the accumulator,
// never persisted.
//
// A record exists only if its source line split into exactly 10 non-empty
// whitespace-separated tokens, token 0 parsed as a float and tokens 1 and 4
// parsed as integers. All other fields are opaque tokens passed through
// unvalidated.
type LogRecord struct {
	Timestamp          float64 // seconds, fractional allowed, no ordering assumed
	ResponseHeaderSize int64
	ClientIP           string
	HTTPResponseCode   string
	ResponseSize       int64
	HTTPRequestMethod  string
	URL                string
	Username           string
	AccessType         string
	ResponseType       string
}
