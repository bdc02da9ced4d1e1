package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrodgar/gymrat/internal/api"
	"github.com/mrodgar/gymrat/internal/factory"
)

const testJWTSecret = "e2e-secret-0123456789abcdef0123456789"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "gymctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gymctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	app      *factory.App
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{
		JWTSecret: testJWTSecret,
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Storage:        app.Storage,
		TokenService:   app.TokenService,
		AuthService:    app.AuthService,
		GymService:     app.GymService,
		CatalogService: app.CatalogService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		app:  app,
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type userResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	Strength           int    `json:"strength"`
	Endurance          int    `json:"endurance"`
	Flexibility        int    `json:"flexibility"`
	AccessoryPurchased bool   `json:"accessory_purchased"`
	AccessoryName      string `json:"accessory_name"`
}

type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type sessionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type accessoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type exerciseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type routineResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exercise_ids"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register
	output, err := cli.run("auth", "register", "--name", "Alice", "--user", "alice", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "Alice", authResp.Name)
	assert.Equal(t, "alice", authResp.Username)
	assert.Equal(t, "USER", authResp.Role)
	assert.NotEmpty(t, authResp.Token)

	// Me (token saved in token file by register)
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var me userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, authResp.ID, me.ID)

	// Login with a fresh runner sharing the binary
	cli2 := &cliRunner{
		binaryPath: cli.binaryPath,
		serverURL:  cli.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token2"),
	}
	output, err = cli2.run("auth", "login", "--user", "alice", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)

	var loginResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loginResp))
	assert.Equal(t, authResp.ID, loginResp.ID)
}

func TestCLI_TrainingFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--name", "Alice", "--user", "alice", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	token := authResp.Token

	// Train strength past the ceiling
	output, err = cli.runWithToken(token, "user", "train", "--stat", "STRENGTH", "--amount", "110")
	require.NoError(t, err, "output: %s", output)
	var user userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &user))
	assert.Equal(t, 100, user.Strength)

	// Purchase should be denied while other stats lag
	output, err = cli.runWithToken(token, "user", "purchase", "--name", "Gloves")
	assert.Error(t, err, "output: %s", output)

	// Max out the remaining stats
	for _, stat := range []string{"ENDURANCE", "FLEXIBILITY"} {
		output, err = cli.runWithToken(token, "user", "train", "--stat", stat, "--amount", "100")
		require.NoError(t, err, "output: %s", output)
	}

	// Purchase succeeds
	output, err = cli.runWithToken(token, "user", "purchase", "--name", "Gloves")
	require.NoError(t, err, "output: %s", output)
	var acc accessoryResponse
	require.NoError(t, json.Unmarshal([]byte(output), &acc))
	assert.Equal(t, "Gloves", acc.Name)

	// Second purchase is denied
	output, err = cli.runWithToken(token, "user", "purchase", "--name", "Belt")
	assert.Error(t, err, "output: %s", output)

	// Rest lowers everything
	output, err = cli.runWithToken(token, "user", "rest", "--amount", "30")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &user))
	assert.Equal(t, 70, user.Strength)
	assert.Equal(t, 70, user.Endurance)
	assert.Equal(t, 70, user.Flexibility)
	assert.True(t, user.AccessoryPurchased)

	// Record a free-text session
	output, err = cli.runWithToken(token, "user", "record", "--description", "Morning cardio")
	require.NoError(t, err, "output: %s", output)

	// Session log: three trains, one rest, one record
	output, err = cli.runWithToken(token, "user", "sessions")
	require.NoError(t, err, "output: %s", output)
	var sessions []sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sessions))
	require.Len(t, sessions, 5)
	assert.Equal(t, "Trained STRENGTH by 110", sessions[0].Description)
	assert.Equal(t, "Rested by 30", sessions[3].Description)
	assert.Equal(t, "Morning cardio", sessions[4].Description)
}

func TestCLI_ExerciseAndRoutineCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Bootstrap an admin directly, then login through the CLI
	_, err := ts.app.AuthService.EnsureAdmin(context.Background(), "Admin", "admin", "adminpass")
	require.NoError(t, err)

	output, err := cli.run("auth", "login", "--user", "admin", "--pass", "adminpass")
	require.NoError(t, err, "output: %s", output)
	var adminAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &adminAuth))
	adminToken := adminAuth.Token

	// Admin creates an exercise
	output, err = cli.runWithToken(adminToken, "exercise", "create", "--name", "Squat", "--category", "LEGS")
	require.NoError(t, err, "output: %s", output)
	var exercise exerciseResponse
	require.NoError(t, json.Unmarshal([]byte(output), &exercise))
	assert.Equal(t, "Squat", exercise.Name)

	// Regular user registers and sees the catalog without auth gymnastics
	output, err = cli.run("auth", "register", "--name", "Alice", "--user", "alice", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
	var aliceAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &aliceAuth))

	output, err = cli.runWithToken(aliceAuth.Token, "exercise", "list")
	require.NoError(t, err, "output: %s", output)
	var exercises []exerciseResponse
	require.NoError(t, json.Unmarshal([]byte(output), &exercises))
	require.Len(t, exercises, 1)

	// Regular user cannot create exercises
	output, err = cli.runWithToken(aliceAuth.Token, "exercise", "create", "--name", "Deadlift")
	assert.Error(t, err, "output: %s", output)

	// User builds a routine from the catalog
	output, err = cli.runWithToken(aliceAuth.Token, "routine", "create", "--name", "Leg day", "--exercise", exercise.ID)
	require.NoError(t, err, "output: %s", output)
	var routine routineResponse
	require.NoError(t, json.Unmarshal([]byte(output), &routine))
	assert.Equal(t, "Leg day", routine.Name)
	require.Len(t, routine.ExerciseIDs, 1)

	output, err = cli.runWithToken(aliceAuth.Token, "routine", "list")
	require.NoError(t, err, "output: %s", output)
	var routines []routineResponse
	require.NoError(t, json.Unmarshal([]byte(output), &routines))
	require.Len(t, routines, 1)

	// Another user cannot see it
	output, err = cli.run("auth", "register", "--name", "Bob", "--user", "bob", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
	var bobAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &bobAuth))

	output, err = cli.runWithToken(bobAuth.Token, "routine", "get", routine.ID)
	assert.Error(t, err, "output: %s", output)
}

func TestCLI_AdminCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	_, err := ts.app.AuthService.EnsureAdmin(context.Background(), "Admin", "admin", "adminpass")
	require.NoError(t, err)

	output, err := cli.run("auth", "login", "--user", "admin", "--pass", "adminpass")
	require.NoError(t, err, "output: %s", output)
	var adminAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &adminAuth))
	adminToken := adminAuth.Token

	// Create a user through the admin surface
	output, err = cli.runWithToken(adminToken, "admin", "create", "--name", "Carol", "--user", "carol", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
	var carol userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &carol))
	assert.Equal(t, "USER", carol.Role)

	// Promote her
	output, err = cli.runWithToken(adminToken, "admin", "set-role", carol.ID, "--role", "ADMIN")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &carol))
	assert.Equal(t, "ADMIN", carol.Role)

	// List includes both accounts
	output, err = cli.runWithToken(adminToken, "admin", "list")
	require.NoError(t, err, "output: %s", output)
	var users []userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &users))
	assert.Len(t, users, 2)

	// Delete
	_, err = cli.runWithToken(adminToken, "admin", "delete", carol.ID)
	require.NoError(t, err)

	output, err = cli.run("auth", "login", "--user", "carol", "--pass", "secret")
	assert.Error(t, err, "output: %s", output)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Me without auth
	output, err := cli.run("auth", "me")
	assert.Error(t, err, "output: %s", output)

	// Train an unknown stat
	output, err = cli.run("auth", "register", "--name", "Alice", "--user", "alice", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))

	output, err = cli.runWithToken(authResp.Token, "user", "train", "--stat", "CHARISMA", "--amount", "10")
	assert.Error(t, err, "output: %s", output)
}
