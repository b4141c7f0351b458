package analyzers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"logstats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func writeTempLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	writeFile(t, path, content)
	return path
}

func requestedAll() models.MetricSet {
	return models.NewMetricSet(
		models.MetricMostFrequentIP,
		models.MetricLeastFrequentIP,
		models.MetricEventsPerSecond,
		models.MetricTotalBytes,
	)
}

func TestLineScanner_Scan_AccumulatesValidLines(t *testing.T) {
	t.Parallel()

	path := writeTempLog(t,
		"1000.0 200 10.0.0.1 200 500 GET /a user1 x y\n"+
			"1002.0 150 10.0.0.2 200 300 GET /b user2 x y\n"+
			"1000.0 200 10.0.0.1 200 500 GET /a user1 x y\n")

	scanner := NewLineScanner()
	stats, err := scanner.Scan(context.Background(), path, requestedAll())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Entries())
	assert.Equal(t, int64(1850), stats.TotalBytes())
	assert.Equal(t, &models.IPCount{IP: "10.0.0.1", Count: 2}, stats.MostFrequentIP())
}

func TestLineScanner_Scan_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	path := writeTempLog(t,
		"1000.0 200 10.0.0.1 200 500 GET /a user1 x y\n"+
			"this line has eight tokens only in it\n"+
			"\n"+
			"not-a-ts 200 10.0.0.1 200 500 GET /a user1 x y\n"+
			"1002.0 150 10.0.0.2 200 300 GET /b user2 x y\n")

	scanner := NewLineScanner()
	stats, err := scanner.Scan(context.Background(), path, requestedAll())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Entries())
	assert.Equal(t, int64(1150), stats.TotalBytes())
}

func TestLineScanner_Scan_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeTempLog(t, "")

	scanner := NewLineScanner()
	stats, err := scanner.Scan(context.Background(), path, requestedAll())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Entries())
	assert.Nil(t, stats.MostFrequentIP())
}

func TestLineScanner_Scan_ReplacesInvalidUTF8(t *testing.T) {
	t.Parallel()

	// An invalid byte inside an opaque token must not fail the scan; the
	// byte is replaced and the line still has ten tokens.
	path := writeTempLog(t, "1000.0 200 10.0.0.1 200 500 GET /a us\xffer x y\n")

	scanner := NewLineScanner()
	stats, err := scanner.Scan(context.Background(), path, requestedAll())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Entries())
	assert.Equal(t, &models.IPCount{IP: "10.0.0.1", Count: 1}, stats.MostFrequentIP())
}

func TestLineScanner_Scan_FileNotFound(t *testing.T) {
	t.Parallel()

	scanner := NewLineScanner()
	stats, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "missing.log"), requestedAll())

	require.Error(t, err)
	assert.Nil(t, stats)
	requireServiceErrorCode(t, err, codeInputFileNotFound)
}

func TestLineScanner_Scan_CancelledContext(t *testing.T) {
	t.Parallel()

	path := writeTempLog(t, "1000.0 200 10.0.0.1 200 500 GET /a user1 x y\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scanner := NewLineScanner()
	stats, err := scanner.Scan(ctx, path, requestedAll())

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, stats)
}

func TestLineScanner_Scan_HonoursRequestedMetrics(t *testing.T) {
	t.Parallel()

	path := writeTempLog(t, "1000.0 200 10.0.0.1 200 500 GET /a user1 x y\n")

	scanner := NewLineScanner()
	stats, err := scanner.Scan(context.Background(), path, models.NewMetricSet(models.MetricTotalBytes))
	require.NoError(t, err)

	assert.Equal(t, int64(700), stats.TotalBytes())
	assert.Nil(t, stats.MostFrequentIP())
	_, _, ok := stats.TimeSpan()
	assert.False(t, ok)
}
