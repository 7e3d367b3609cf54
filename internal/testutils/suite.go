package testutils

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "planner"
	pgPassword = "planner"
	pgDatabase = "planner_test"
)

// plannerTables lists every table the models create, children first
var plannerTables = []string{
	"project_dependencies",
	"milestones",
	"timeline_phases",
	"project_timelines",
	"resource_allocations",
	"availabilities",
	"team_members",
	"projects",
}

// pgContainer is the Postgres instance shared by every integration suite in a
// test binary. It is started on first use and purged from TestMain.
type pgContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared pgContainer

// BaseTestSuite gives integration suites a migrated Postgres database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container if needed and returns a suite bound to it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start postgres container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// CleanupSharedContainer closes the shared database and purges its container.
// Integration test packages call it from their TestMain.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}

	log := logrus.WithField("container", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.WithError(err).Warn("Could not purge postgres container")
	} else {
		log.Info("Purged postgres container")
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container stays up for the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the planner tables that exist
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range plannerTables {
		if migrator.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q CASCADE`, table))
		}
	}
}

func (c *pgContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	err = pool.Retry(func() error {
		if err := ping(dsn); err != nil {
			return err
		}
		db, err := database.Initialize(dsn, &database.Options{Driver: database.DriverPostgres})
		if err != nil {
			return err
		}
		c.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	c.cfg = &config.Config{
		DatabaseDriver:        database.DriverPostgres,
		DatabaseURL:           dsn,
		Port:                  "8080",
		LogLevel:              "debug",
		Environment:           "test",
		LockBackend:           "memory",
		DefaultWeeklyCapacity: 40,
	}

	logrus.WithFields(logrus.Fields{
		"port":   port,
		"tables": c.tables(),
	}).Info("Shared postgres ready")
	return nil
}

// ping checks that the server accepts connections before gorm migrates
func ping(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}

func (c *pgContainer) tables() []string {
	var names []string
	c.db.Raw(`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`).Scan(&names)
	return names
}
