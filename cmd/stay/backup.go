package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juniperhq/stay/internal/sync"
)

func s3Destination(ctx context.Context) (*sync.S3Destination, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("STAY_S3_BUCKET is not set")
	}
	return sync.NewS3Destination(ctx, cfg.S3Bucket, cfg.S3Key, cfg.S3Region, cfg.S3Endpoint)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload the store document to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Flush first so the uploaded document matches live state.
		if err := reg.Save(); err != nil {
			return err
		}
		data, err := os.ReadFile(storePath)
		if err != nil {
			return fmt.Errorf("read store document: %w", err)
		}

		dest, err := s3Destination(ctx)
		if err != nil {
			return err
		}
		if err := dest.Upload(ctx, data); err != nil {
			return err
		}
		fmt.Printf("Uploaded %d bytes to s3://%s/%s\n", len(data), cfg.S3Bucket, cfg.S3Key)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the store document with the S3 backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dest, err := s3Destination(ctx)
		if err != nil {
			return err
		}
		data, err := dest.Download(ctx)
		if err != nil {
			return err
		}
		if err := os.WriteFile(storePath, data, 0o644); err != nil {
			return fmt.Errorf("write store document: %w", err)
		}
		if err := reg.Load(); err != nil {
			return err
		}
		fmt.Printf("Restored %d bytes from s3://%s/%s\n", len(data), cfg.S3Bucket, cfg.S3Key)
		return nil
	},
}
