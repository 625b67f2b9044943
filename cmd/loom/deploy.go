package main

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/deploy"
)

func deployCmd() *cobra.Command {
	var (
		dir    string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Publish an export to S3",
		Long: `Upload an exported directory to an S3 bucket.

Credentials and region come from the standard AWS environment
(AWS_PROFILE, AWS_REGION, instance roles).

Examples:
  loom export && loom deploy --bucket=my-site
  loom deploy --bucket=my-site --prefix=preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				return errors.New("--bucket is required")
			}
			return runDeploy(cmd, dir, bucket, prefix)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "dist", "Directory to upload")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Key prefix inside the bucket")

	return cmd
}

func runDeploy(cmd *cobra.Command, dir, bucket, prefix string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	u := deploy.NewUploader(s3.NewFromConfig(cfg), bucket, prefix)
	n, err := u.UploadDir(ctx, dir)
	if err != nil {
		return err
	}
	success("uploaded %d objects to s3://%s/%s", n, bucket, prefix)
	return nil
}
