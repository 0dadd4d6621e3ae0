// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"

	"github.com/sehatin/progress-api/config"
	"github.com/sehatin/progress-api/internal/infra/db"
	"github.com/sehatin/progress-api/internal/infra/dependency"
	"github.com/sehatin/progress-api/internal/integration/persistence/model"
	"github.com/sehatin/progress-api/test/integration/mock"
)

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *mock.Redis
	currentGoalID uint
	goalIDs       []uint
}

type response struct {
	status int
	header http.Header
	body   any
}

var serverInit sync.Once
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

// InitializeTestSuite prepares shared resources before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		initializePort()
	})
}

// InitializeScenario registers every step and the per-scenario hooks.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"goals":         &model.GoalModel{},
			"user_progress": &model.UserProgressModel{},
			"notifications": &model.NotificationModel{},
		}),
		redis: mock.NewRedis(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^user (\d+) has a "([^"]*)" goal with value (\d+) and progress (\d+)$`, test.userHasAGoalWithValueAndProgress)
	ctx.Given(`^user (\d+) has initialized progress$`, test.userHasInitializedProgress)
	ctx.Given(`^the cache is unavailable$`, test.theCacheIsUnavailable)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should be a list of (\d+) items$`, test.theResponseShouldBeAListOfItems)
	ctx.Then(`^the response header "([^"]*)" should exist$`, test.theResponseHeaderShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Cache assertion steps
	ctx.Then(`^the progress of user (\d+) should be cached$`, test.theProgressOfUserShouldBeCached)
	ctx.Then(`^the progress of user (\d+) should not be cached$`, test.theProgressOfUserShouldNotBeCached)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentGoalID = 0
	t.goalIDs = nil

	if err := t.redis.Start(); err != nil {
		return err
	}
	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := &config.Config{
			Server: config.ServerConfig{
				Port:        testServerPort,
				Environment: "test",
			},
			Database: config.DatabaseConfig{Driver: db.DriverSQLite},
			Redis:    config.RedisConfig{Enabled: true, TTL: time.Minute},
			CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		}

		dbHealthChecker := func() bool {
			sqlDB, err := t.db.DbConn.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}

		injector := dependency.NewInjector(cfg, t.db.DbConn, dbHealthChecker, t.redis.Client)
		injector.Router.Setup(cfg.Server.Environment)

		server := &http.Server{
			Addr:              ":" + strconv.Itoa(testServerPort),
			Handler:           injector.Router.Handler(cfg.CORS.AllowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := t.client.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not become healthy on %s", t.uri)
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) userHasAGoalWithValueAndProgress(userID int64, goalType string, value, progress int) error {
	payload := fmt.Sprintf(
		`{"user_id": %d, "goal_type": %q, "value": %d, "period": 4, "period_unit": "week", "progress": %d}`,
		userID, goalType, value, progress,
	)
	if err := t.executeRequest(http.MethodPost, "/api/v1/goals/new-goal/", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to create goal: status %d, body %v", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) userHasInitializedProgress(userID int64) error {
	path := fmt.Sprintf("/api/v1/%d/create-progress/", userID)
	if err := t.executeRequest(http.MethodPost, path, nil); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated && t.response.status != http.StatusOK {
		return fmt.Errorf("failed to create progress: status %d, body %v", t.response.status, t.response.body)
	}
	return nil
}

// theCacheIsUnavailable stops miniredis; the next scenario restarts it.
func (t *testContext) theCacheIsUnavailable() error {
	t.redis.Stop()
	return nil
}
