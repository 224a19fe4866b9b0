package e2e

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const (
	seedEmail    = "testuser@example.com"
	seedPassword = "testpass123"
)

var (
	appURL string
)

func TestMain(m *testing.M) {
	os.Exit(runTestMain(m))
}

func runTestMain(m *testing.M) int {
	pkg, err := serverPackage()
	if err != nil {
		fmt.Println(err)
		return 1
	}

	buildPath := filepath.Join(os.TempDir(), "finance-tracker-test")
	output, err := exec.Command("go", "build", "-o", buildPath, pkg).CombinedOutput()
	if err != nil {
		fmt.Printf("Failed to build app: %v\n%s\n", err, output)
		return 1
	}
	defer os.Remove(buildPath)

	dbPath := filepath.Join(os.TempDir(), "test_finance.db")
	os.Remove(dbPath)
	defer os.Remove(dbPath)

	port := "8081"
	appURL = "http://localhost:" + port

	serverCmd := exec.Command(buildPath)
	serverCmd.Env = append(os.Environ(),
		"PORT="+port,
		"DB_PATH="+dbPath,
		"JWT_SECRET=e2e-secret",
		"BCRYPT_COST=4",
		"SEED_NAME=Test User",
		"SEED_EMAIL="+seedEmail,
		"SEED_PASSWORD="+seedPassword,
	)
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr

	if err := serverCmd.Start(); err != nil {
		fmt.Printf("Failed to start server: %v\n", err)
		return 1
	}

	// Seeding runs before the listener starts, so a response from / means the seed user exists.
	if !waitReady(appURL+"/", 50) {
		fmt.Println("Server failed to start or is not reachable")
		serverCmd.Process.Kill()
		return 1
	}

	code := m.Run()

	if err := serverCmd.Process.Kill(); err != nil {
		fmt.Printf("Failed to kill server: %v\n", err)
	}

	return code
}

// serverPackage locates cmd/server from either the e2e directory or the module root.
func serverPackage() (string, error) {
	for _, pkg := range []string{"../cmd/server", "./cmd/server"} {
		if _, err := os.Stat(pkg); err == nil {
			return pkg, nil
		}
	}
	return "", fmt.Errorf("could not find cmd/server to build")
}

func waitReady(url string, attempts int) bool {
	for i := 0; i < attempts; i++ {
		time.Sleep(100 * time.Millisecond)
		resp, err := http.Get(url)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return true
		}
	}
	return false
}
