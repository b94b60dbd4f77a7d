package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"
)

const DefaultHealthCheckTimeout = 30 * time.Second

type TestEnv struct {
	ServerURL  string
	ServerPort string
}

func NewTestEnv() *TestEnv {
	serverPort := getEnv("TEST_SERVER_PORT", "8080")
	serverURL := getEnv("TEST_SERVER_URL", fmt.Sprintf("http://localhost:%s", serverPort))

	return &TestEnv{
		ServerURL:  serverURL,
		ServerPort: serverPort,
	}
}

// Setup returns a client against the running planner service, skipping the
// test when no service is reachable so the integration suite can run
// alongside the unit tests.
func (e *TestEnv) Setup(t *testing.T) *Client {
	t.Helper()

	client := NewClient(e.ServerURL)
	if !client.Healthy() {
		t.Skipf("no planner service reachable at %s", e.ServerURL)
	}
	return client
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
