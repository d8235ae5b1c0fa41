package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultSSMPrefix = "/imoveis/prod/"
	defaultRegion    = "us-east-2"
	defaultPort      = "7070"
	defaultBodyLimit = "1M"
	defaultDSN       = "imoveis.db"
)

type Config struct {
	Env           string
	Port          string
	BodyLimit     string
	PublicBaseURL string
	Database      DatabaseConfig
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load fills the process environment (SSM in production, .env otherwise)
// and then reads the service configuration from it.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to load .env file: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() (*Config, error) {
	driver := strings.ToLower(envOr("DB_DRIVER", "sqlite"))

	maxConns := 1
	if driver == "postgres" {
		maxConns = 10
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be a positive integer, got %q", raw)
		}
		maxConns = n
	}

	return &Config{
		Env:           os.Getenv("GO_ENV"),
		Port:          envOr("PORT", defaultPort),
		BodyLimit:     envOr("BODY_LIMIT", defaultBodyLimit),
		PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		Database: DatabaseConfig{
			Driver:       driver,
			DSN:          envOr("DB_DSN", defaultDSN),
			MaxOpenConns: maxConns,
		},
	}, nil
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(envOr("AWS_REGION", defaultRegion)))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	n, err := exportParameters(ctx, ssm.NewFromConfig(cfg), envOr("SSM_PREFIX", defaultSSMPrefix))
	if err != nil {
		return fmt.Errorf("unable to load prod environment: %w", err)
	}
	log.Debugf("loaded %d prod environment variables", n)
	return nil
}

// exportParameters copies every parameter under prefix into the process
// environment, keyed by the name with the prefix stripped. Variables that
// are already set win over the parameter store.
func exportParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	exported := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return exported, err
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if key == "" {
				continue
			}
			if _, set := os.LookupEnv(key); set {
				continue
			}
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return exported, fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			exported++
		}
	}
	return exported, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
