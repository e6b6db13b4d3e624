package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	StorePath   string // STAY_STORE_PATH (default "file.json")
	HistoryPath string // STAY_HISTORY_PATH (default ".stay_history")
	HistoryMax  int    // STAY_HISTORY_MAX (default 100)
	Prompt      string // STAY_PROMPT (default "(stay) ")

	// Backup settings
	S3Bucket   string // STAY_S3_BUCKET (enables backup when set)
	S3Endpoint string // STAY_S3_ENDPOINT (custom endpoint for MinIO)
	S3Region   string // STAY_S3_REGION (default "us-east-1")
	S3Key      string // STAY_S3_KEY (default "stay/backup.json")
}

func Load() (*Config, error) {
	c := &Config{
		StorePath:   envOrDefault("STAY_STORE_PATH", "file.json"),
		HistoryPath: envOrDefault("STAY_HISTORY_PATH", ".stay_history"),
		Prompt:      envOrDefault("STAY_PROMPT", "(stay) "),
		S3Bucket:    os.Getenv("STAY_S3_BUCKET"),
		S3Endpoint:  os.Getenv("STAY_S3_ENDPOINT"),
		S3Region:    envOrDefault("STAY_S3_REGION", "us-east-1"),
		S3Key:       envOrDefault("STAY_S3_KEY", "stay/backup.json"),
	}

	histMax := envOrDefault("STAY_HISTORY_MAX", "100")
	n, err := strconv.Atoi(histMax)
	if err != nil {
		return nil, fmt.Errorf("STAY_HISTORY_MAX: %w", err)
	}
	c.HistoryMax = n

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
