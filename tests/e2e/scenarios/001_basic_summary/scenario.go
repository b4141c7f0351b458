package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines  = 60000 // Total number of log lines to generate, must be divisible by 6
	lineSpacing = 0.5   // Seconds between consecutive line timestamps
	headerBytes = 100   // responseHeaderSize on every generated line
	bodyBytes   = 150   // responseSize on every generated line
	baseEpoch   = 1700000000.0
)

// Per round of six lines: ips[0] three times, ips[1] twice, ips[2] once.
var ips = []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}

// ### End - fixed configs

type ipCount struct {
	IP    string `json:"ip"`
	Count int64  `json:"count"`
}

type summaryResponse struct {
	MostFrequentIP  *ipCount `json:"mostFrequentIp"`
	LeastFrequentIP *ipCount `json:"leastFrequentIp"`
	EventsPerSecond *float64 `json:"eventsPerSecond"`
	TotalBytes      *int64   `json:"totalBytes"`
}

type analyzeRequest struct {
	InputPaths []string `json:"inputPaths"`
	Metrics    []string `json:"metrics"`
}

// main runs the e2e scenario: 001_basic_summary
//
// This scenario tests the end-to-end flow of access-log analysis through the
// serve-mode API. It generates a deterministic 60,000-line access log, then
// sends repeated POST /analyze requests for all four metrics in parallel and
// checks every response against the precomputed expectations.
//
// What it tests:
//   - Analysis requests via the POST /analyze endpoint
//   - Per-request isolation: concurrent identical requests return identical results
//   - Most/least frequent IP counting with a skewed IP distribution
//   - Events-per-second derivation over the full timestamp span
//   - Total byte accounting (response header + body sizes)
//
// Expected results:
//   - Every request returns 200 OK
//   - mostFrequentIp is 10.0.0.1 with totalLines/2 occurrences
//   - leastFrequentIp is 10.0.0.3 with totalLines/6 occurrences
//   - eventsPerSecond equals totalLines over the generated span, rounded to 2 decimals
//   - totalBytes equals totalLines * (headerBytes + bodyBytes)
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the logstats API server
	requests := 50                     // Number of identical analyze requests to send
	parallel := 4                      // Number of concurrent requests
	logDir := ".tmp/e2e-logs"          // Directory for the generated log file, relative to project root
	wantCleanLogDir := true            // If true, clean up the log directory before running

	if totalLines%6 != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: totalLines (%d) must be divisible by 6\n", totalLines)
		os.Exit(1)
	}

	// Get project root directory by looking for go.mod file
	projectRoot, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Please run from inside the project\n")
			os.Exit(1)
		}
		projectRoot = parent
	}

	logPath := filepath.Join(projectRoot, logDir)
	if wantCleanLogDir {
		fmt.Printf("Cleaning log directory: %s\n", logPath)
		if err := os.RemoveAll(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean log directory: %v\n", err)
		}
	}
	if err := os.MkdirAll(logPath, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_basic_summary")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("REQUESTS: %d\n", requests)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Println()

	fmt.Printf("Generating %d log lines...\n", totalLines)
	logFile := filepath.Join(logPath, "access.log")
	if err := generateLogFile(logFile); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate log file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Log file written: %s\n", logFile)
	fmt.Println()

	expected := expectedSummary()
	fmt.Printf("Expected mostFrequentIp: %s (%d)\n", expected.MostFrequentIP.IP, expected.MostFrequentIP.Count)
	fmt.Printf("Expected leastFrequentIp: %s (%d)\n", expected.LeastFrequentIP.IP, expected.LeastFrequentIP.Count)
	fmt.Printf("Expected eventsPerSecond: %.2f\n", *expected.EventsPerSecond)
	fmt.Printf("Expected totalBytes: %d\n", *expected.TotalBytes)
	fmt.Println()

	reqBody, err := json.Marshal(analyzeRequest{
		InputPaths: []string{logFile},
		Metrics:    []string{"mostFrequentIp", "leastFrequentIp", "eventsPerSecond", "totalBytes"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal request body: %v\n", err)
		os.Exit(1)
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var okRequests int64

	for i := 1; i <= requests; i++ {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(requestIndex int) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			if err := sendAndVerify(baseURL, reqBody, expected); err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("request %d: %w", requestIndex, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Request %d failed: %v\n", requestIndex, err)
				return
			}
			atomic.AddInt64(&okRequests, 1)
		}(i)
	}
	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d of %d requests failed\n", len(errors), requests)
		os.Exit(1)
	}

	fmt.Println("All requests completed successfully")
	fmt.Println("=== Statistics ===")
	fmt.Printf("Requests sent: %d\n", requests)
	fmt.Printf("Requests verified: %d\n", atomic.LoadInt64(&okRequests))
	fmt.Println("Scenario completed successfully")
}

// generateLogFile writes totalLines ten-token access log lines. Line i gets
// timestamp baseEpoch + i*lineSpacing; within each round of six lines the IP
// pattern is 3x ips[0], 2x ips[1], 1x ips[2].
func generateLogFile(path string) error {
	var buf bytes.Buffer
	pattern := []int{0, 0, 0, 1, 1, 2}

	for i := 0; i < totalLines; i++ {
		ts := baseEpoch + float64(i)*lineSpacing
		ip := ips[pattern[i%len(pattern)]]
		fmt.Fprintf(&buf, "%.3f %d %s TCP_HIT/200 %d GET http://example.com/item/%d user%d DIRECT/origin text/html\n",
			ts, headerBytes, ip, bodyBytes, i%100, i%10)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func expectedSummary() summaryResponse {
	span := float64(totalLines-1) * lineSpacing
	eps := math.Round(float64(totalLines)/span*100) / 100
	total := int64(totalLines) * (headerBytes + bodyBytes)

	return summaryResponse{
		MostFrequentIP:  &ipCount{IP: ips[0], Count: totalLines / 2},
		LeastFrequentIP: &ipCount{IP: ips[2], Count: totalLines / 6},
		EventsPerSecond: &eps,
		TotalBytes:      &total,
	}
}

func sendAndVerify(baseURL string, reqBody []byte, expected summaryResponse) error {
	req, err := http.NewRequest("POST", baseURL+"/analyze", bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var got summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if got.MostFrequentIP == nil || *got.MostFrequentIP != *expected.MostFrequentIP {
		return fmt.Errorf("mostFrequentIp mismatch: got %+v, want %+v", got.MostFrequentIP, expected.MostFrequentIP)
	}
	if got.LeastFrequentIP == nil || *got.LeastFrequentIP != *expected.LeastFrequentIP {
		return fmt.Errorf("leastFrequentIp mismatch: got %+v, want %+v", got.LeastFrequentIP, expected.LeastFrequentIP)
	}
	if got.EventsPerSecond == nil || *got.EventsPerSecond != *expected.EventsPerSecond {
		return fmt.Errorf("eventsPerSecond mismatch: got %v, want %v", got.EventsPerSecond, *expected.EventsPerSecond)
	}
	if got.TotalBytes == nil || *got.TotalBytes != *expected.TotalBytes {
		return fmt.Errorf("totalBytes mismatch: got %v, want %v", got.TotalBytes, *expected.TotalBytes)
	}

	return nil
}
