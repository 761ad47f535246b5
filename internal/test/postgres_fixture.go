package test

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	IntegrationEnv = "INTEGRATION"

	postgresImage    = "postgres:15-alpine"
	postgresPort     = nat.Port("5432/tcp")
	postgresUser     = "storefront"
	postgresPassword = "storefront"
	postgresDatabase = "storefront"
)

// IntegrationEnabled reports whether container-backed tests should run.
func IntegrationEnabled() bool {
	return os.Getenv(IntegrationEnv) == "true"
}

type PostgresFixture struct {
	container testcontainers.Container
	URL       string
}

func postgresURL(host string, port nat.Port) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, host, port.Port(), postgresDatabase,
	)
}

func StartPostgres(ctx context.Context) (*PostgresFixture, error) {
	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDatabase,
		},
		WaitingFor: wait.ForSQL(postgresPort, "postgres", func(port nat.Port) string {
			return postgresURL("localhost", port)
		}),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &PostgresFixture{container: container, URL: postgresURL(host, port)}, nil
}

func (f *PostgresFixture) Stop(ctx context.Context) error {
	return f.container.Terminate(ctx)
}
