package container

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"projects/showcase/internal/client"
	"projects/showcase/internal/config"
	"projects/showcase/internal/domain"
	"projects/showcase/internal/fixture"
	"projects/showcase/internal/mirror"
	"projects/showcase/internal/repository"
	"projects/showcase/internal/service"
	"projects/showcase/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Source  fixture.Source
	Service *service.Service

	db      *pgxpool.Pool
	logFile *os.File
	out     io.Writer
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		out:    os.Stdout,
	}

	if err := container.setupLogging(); err != nil {
		return nil, err
	}

	source, err := container.newSource(ctx)
	if err != nil {
		container.Close()
		return nil, err
	}
	container.Source = source

	initial := service.InitialSelection{SortKey: domain.SortKey(cfg.UI.SortKey)}
	if initial.Filter, err = domain.ParseTag(cfg.UI.Filter); err != nil {
		container.Close()
		return nil, fmt.Errorf("ui.filter: %w", err)
	}

	container.Service = service.NewService(source, domain.CatalogKinds, initial)

	return container, nil
}

func (c *Container) newSource(ctx context.Context) (fixture.Source, error) {
	cfg := c.Config

	switch cfg.Fixtures.Source {
	case config.SourceBuiltin:
		log.Info("Using built-in fixtures")
		return fixture.NewEmbeddedSource(), nil

	case config.SourceFile:
		log.Infof("Using fixtures from %s", cfg.Fixtures.Dir)
		return fixture.NewFileSource(cfg.Fixtures.Dir), nil

	case config.SourceHTTP:
		mirrors, err := mirror.NewSupplier(ctx,
			append([]string{cfg.Fixtures.BaseURL}, cfg.Fixtures.Mirrors...),
			fmt.Sprintf("/%s.json", domain.CatalogKinds[0]),
			time.Duration(cfg.Fixtures.Timeout)*time.Second,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize fixture mirrors: %w", err)
		}

		log.Infof("Using fixtures from %d mirror(s), starting with %s", mirrors.Len(), cfg.Fixtures.BaseURL)
		return client.NewFixtureClient(cfg.Fixtures, mirrors), nil

	case config.SourcePostgres:
		db, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.db = db

		log.Info("✅ Connected to PostgreSQL successfully")
		return repository.NewItemRepository(db, cfg.Database.Table), nil

	default:
		return nil, fmt.Errorf("unknown fixture source %q", cfg.Fixtures.Source)
	}
}

// Run loads all catalogs and hands them to the configured rendering surface.
func (c *Container) Run(ctx context.Context) error {
	if err := c.Service.Load(ctx); err != nil {
		return fmt.Errorf("failed to load catalogs: %w", err)
	}

	switch c.Config.UI.Mode {
	case config.ModePrint:
		return ui.Print(c.out, c.Service.Models())

	default:
		opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
		if c.Config.UI.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		if _, err := tea.NewProgram(ui.New(c.Service), opts...).Run(); err != nil {
			return fmt.Errorf("UI exited with error: %w", err)
		}
		return nil
	}
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	if c.db != nil {
		c.db.Close()
		c.db = nil
	}

	log.SetOutput(os.Stderr)
	if c.logFile != nil {
		f := c.logFile
		c.logFile = nil
		return f.Close()
	}
	return nil
}
