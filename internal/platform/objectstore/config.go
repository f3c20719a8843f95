// Package objectstore wraps the MinIO client used to fetch submitted
// contribution archives.
package objectstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/socialproof-labs/socialproof-go/internal/platform/env"
)

type Config struct {
	Endpoint          string
	AccessKey         string
	SecretKey         string
	Region            string
	UseSSL            bool
	BucketSubmissions string
}

func ConfigFromEnv() (Config, error) {
	useSSL, err := env.Bool("PROOF_MINIO_USE_SSL", false)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Endpoint:          env.String("PROOF_MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:         env.String("PROOF_MINIO_ACCESS_KEY", "socialproof"),
		SecretKey:         env.String("PROOF_MINIO_SECRET_KEY", "socialproofminio"),
		Region:            env.String("PROOF_MINIO_REGION", "us-east-1"),
		UseSSL:            useSSL,
		BucketSubmissions: env.String("PROOF_MINIO_BUCKET", "submissions"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("endpoint is required")
	}
	if strings.TrimSpace(c.AccessKey) == "" {
		return errors.New("access key is required")
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("secret key is required")
	}
	if strings.TrimSpace(c.Region) == "" {
		return errors.New("region is required")
	}
	if strings.TrimSpace(c.BucketSubmissions) == "" {
		return errors.New("submissions bucket is required")
	}
	if strings.Contains(c.Endpoint, "://") {
		return fmt.Errorf("endpoint must not include scheme: %q", c.Endpoint)
	}
	return nil
}
