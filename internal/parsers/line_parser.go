package parsers

import (
	"strconv"
	"strings"

	"logstats/internal/models"
)

// Expected positional layout of one access-log line:
//
//	<timestamp> <responseHeaderSize> <clientIp> <httpResponseCode> <responseSize>
//	<httpRequestMethod> <url> <username> <accessType> <responseType>
const fieldCount = 10

// ParseLine parses one access-log line into a LogRecord. It is pure and total:
// the same line always yields the same result, and malformed input is an
// expected, non-exceptional case reported as ok=false, never an error. A line
// qualifies only when it splits into exactly 10 non-empty whitespace-separated
// tokens and its three numeric tokens parse. A 10-token line with an
// unparseable numeric field is skipped like any other malformed line.
func ParseLine(line string) (*models.LogRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return nil, false
	}

	timestamp, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, false
	}
	responseHeaderSize, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, false
	}
	responseSize, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, false
	}

	return &models.LogRecord{
		Timestamp:          timestamp,
		ResponseHeaderSize: responseHeaderSize,
		ClientIP:           fields[2],
		HTTPResponseCode:   fields[3],
		ResponseSize:       responseSize,
		HTTPRequestMethod:  fields[5],
		URL:                fields[6],
		Username:           fields[7],
		AccessType:         fields[8],
		ResponseType:       fields[9],
	}, true
}
