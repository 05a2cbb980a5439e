package geodata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3Source locates a data archive in an S3-compatible bucket.
type S3Source struct {
	Bucket   string
	Key      string
	Region   string
	Endpoint string // optional, e.g. MinIO
}

// ObjectGetter is the subset of the S3 client used to download archives.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client builds an S3 client from the default credentials chain.
func NewS3Client(ctx context.Context, src S3Source) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if src.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(src.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("geodata: failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if src.Endpoint != "" {
			o.BaseEndpoint = aws.String(src.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// FetchArchive downloads the archive to dest unless dest already exists.
// The object is written to a temporary file first so a failed download never leaves a partial archive.
func FetchArchive(ctx context.Context, client ObjectGetter, src S3Source, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("geodata: failed to stat %s: %w", dest, err)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(src.Bucket), Key: aws.String(src.Key)})
	if err != nil {
		return fmt.Errorf("geodata: failed to get s3://%s/%s: %w", src.Bucket, src.Key, err)
	}
	defer out.Body.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("geodata: failed to create %s: %w", filepath.Dir(dest), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".archive-*")
	if err != nil {
		return fmt.Errorf("geodata: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, out.Body)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("geodata: failed to download archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("geodata: failed to write archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("geodata: failed to move archive into place: %w", err)
	}

	log.Info().Str("bucket", src.Bucket).Str("key", src.Key).Int64("bytes", n).Msg("downloaded data archive")
	return nil
}
