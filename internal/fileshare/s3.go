package fileshare

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// S3Opener resolves file store targets against S3-compatible storage.
// A sasUrl becomes a pre-authorized custom endpoint used anonymously; a
// credential becomes a static access-key pair against the default endpoint.
type S3Opener struct {
	region string
}

func NewS3Opener(region string) *S3Opener {
	if region == "" {
		region = "us-east-1"
	}
	return &S3Opener{region: region}
}

func (o *S3Opener) Open(target domain.FileStoreTarget) (Share, error) {
	if target.ShareName == "" {
		return nil, errors.New("shareName is required")
	}

	var client *s3.Client
	switch {
	case target.SASURL != "":
		u, err := url.Parse(target.SASURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid sasUrl %q", target.SASURL)
		}
		client = s3.New(s3.Options{
			BaseEndpoint: aws.String(u.Scheme + "://" + u.Host),
			Region:       o.region,
			UsePathStyle: true,
			Credentials:  aws.AnonymousCredentials{},
		})
	case target.Credential != nil:
		client = s3.New(s3.Options{
			Region: o.region,
			Credentials: credentials.NewStaticCredentialsProvider(
				target.Credential.AccessKeyID,
				target.Credential.SecretAccessKey,
				"",
			),
		})
	default:
		return nil, errors.New("no access mode configured")
	}

	return &s3Share{client: client, bucket: target.ShareName}, nil
}

// s3Share adapts one bucket to the Share interface. Directories are the
// usual S3 convention: key prefixes separated by "/".
type s3Share struct {
	client *s3.Client
	bucket string
}

func (s *s3Share) Exists(ctx context.Context) (bool, error) {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}
	return false, err
}

func (s *s3Share) List(ctx context.Context, dir string) ([]Entry, error) {
	prefix := ""
	if dir != "" {
		prefix = strings.TrimSuffix(dir, "/") + "/"
	}

	var entries []Entry
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range page.CommonPrefixes {
			entries = append(entries, Entry{
				Path:  strings.TrimSuffix(*p.Prefix, "/"),
				IsDir: true,
			})
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			// skip the zero-byte placeholder some tools create for the
			// directory itself
			if key == prefix || strings.HasSuffix(key, "/") {
				continue
			}
			entries = append(entries, Entry{Path: key})
		}
	}
	return entries, nil
}

func (s *s3Share) ModTime(ctx context.Context, path string) (time.Time, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return time.Time{}, err
	}
	if out.LastModified == nil {
		return time.Time{}, errors.New("no last-modified timestamp")
	}
	return *out.LastModified, nil
}
