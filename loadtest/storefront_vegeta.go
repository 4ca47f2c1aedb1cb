package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/logger"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// envelope matches the storefront's JSON response envelope.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func main() {
	var (
		storefront = flag.String("storefront", "http://localhost:8080", "Storefront base URL")
		users      = flag.Int("users", 50, "Number of virtual customers (sessions) to prepare")
		rate       = flag.Int("rate", 100, "Requests per second")
		duration   = flag.String("duration", "30s", "Attack duration (e.g. 10s, 1m)")
		products   = flag.Int("products", 4, "Highest product id to add to carts")
		outJSON    = flag.String("out", "vegeta_results.json", "Summary JSON output file")
	)
	flag.Parse()

	attackDuration, err := time.ParseDuration(*duration)
	if err != nil {
		logger.Fatal("invalid duration", "err", err)
	}

	// Register one customer per virtual user and keep the session
	// token each registration identified.
	tokens := prepareSessions(*storefront, *users)
	if len(tokens) == 0 {
		logger.Fatal("no sessions prepared; aborting")
	}

	// Targeter cycling through sessions, adding a random product to
	// each session's cart.
	var counter uint64
	targeter := func(t *vegeta.Target) error {
		idx := atomic.AddUint64(&counter, 1) - 1
		token := tokens[idx%uint64(len(tokens))]
		body, _ := json.Marshal(map[string]any{
			"product_id": rand.Int63n(int64(*products)) + 1,
		})
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/api/v1/cart/items", *storefront)
		t.Body = body
		t.Header = http.Header{}
		t.Header.Set("Content-Type", "application/json")
		t.Header.Set("X-Session-Token", token)
		return nil
	}

	attacker := vegeta.NewAttacker()
	var metrics vegeta.Metrics
	successLogical := uint64(0)
	totalLogical := uint64(0)

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, attackDuration, "storefront_cart") {
		metrics.Add(res)
		atomic.AddUint64(&totalLogical, 1)
		var env envelope
		if err := json.Unmarshal(res.Body, &env); err == nil {
			if env.Code == 0 {
				atomic.AddUint64(&successLogical, 1)
			}
		}
	}
	metrics.Close()

	logicalSuccessRatio := float64(successLogical) / float64(maxUint(1, totalLogical))

	summary := map[string]any{
		"attack": map[string]any{
			"rate_rps": *rate,
			"duration": attackDuration.String(),
			"users":    *users,
		},
		"vegeta_metrics": map[string]any{
			"requests":           metrics.Requests,
			"rate":               metrics.Rate,
			"throughput":         metrics.Throughput,
			"success_ratio_http": metrics.Success,
			"latency_mean_ms":    metrics.Latencies.Mean.Seconds() * 1000,
			"latency_p95_ms":     metrics.Latencies.P95.Seconds() * 1000,
			"latency_p99_ms":     metrics.Latencies.P99.Seconds() * 1000,
			"errors":             metrics.Errors,
		},
		"logical_success_ratio": logicalSuccessRatio,
		"logical_success":       successLogical,
		"logical_total":         totalLogical,
		"timestamp":             time.Now().Format(time.RFC3339),
	}

	data, _ := json.MarshalIndent(summary, "", "  ")
	if err := os.WriteFile(*outJSON, data, 0644); err != nil {
		logger.Warn("write summary failed", "err", err)
	}
	fmt.Println(string(data))
}

// prepareSessions registers one customer per virtual user and returns
// the session tokens issued by the storefront.
func prepareSessions(storefront string, users int) []string {
	tokens := make([]string, 0, users)
	client := &http.Client{Timeout: 5 * time.Second}
	for i := 0; i < users; i++ {
		regBody := map[string]any{
			"name":    fmt.Sprintf("lt_cliente_%d", i),
			"address": fmt.Sprintf("Rua de Teste, %d", i),
			"phone":   fmt.Sprintf("8598541%04d", i),
		}
		token, err := postJSON(client, fmt.Sprintf("%s/api/v1/customers", storefront), regBody)
		if err != nil || token == "" {
			logger.Warn("register failed", "user", i, "err", err)
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// postJSON posts the payload and returns the session token from the
// response headers. Registration conflicts (rerun against the same
// database) are fine: the token is issued either way.
func postJSON(client *http.Client, url string, payload any) (string, error) {
	b, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("status %d body %s", resp.StatusCode, string(body))
	}
	return resp.Header.Get("X-Session-Token"), nil
}

func maxUint(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
