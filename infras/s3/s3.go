package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"escapade/config"
	"escapade/infras/otel"
	"escapade/shared/constant"
)

const (
	otelAttrObject = "object_name"
	otelAttrBucket = "bucket"

	presignExpiry = time.Hour
)

// Media resolves spot photo references into URLs the site can serve.
type Media interface {
	SpotPhotoURL(ctx context.Context, objectName string) (url string, err error)
}

type mediaImpl struct {
	client  *s3.Client
	presign *s3.PresignClient
	config  *config.Config
	otel    otel.Otel
}

// SpotPhotoURL returns a public URL for the photo object when the bucket is
// fronted by a public domain, and a presigned GET URL otherwise.
func (svc *mediaImpl) SpotPhotoURL(ctx context.Context, objectName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".SpotPhotoURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.config.External.S3.BucketName
	objectKey := path.Join(svc.config.External.S3.SpotPhotoDir, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrObject: objectKey,
		otelAttrBucket: bucketName,
	})

	if publicDomain := svc.config.External.S3.PublicDomain; publicDomain != "" {
		return fmt.Sprintf("%s/%s", publicDomain, objectKey), nil
	}

	presigned, err := svc.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		log.Error().Err(err).Str("object", objectKey).Msg("failed to presign spot photo URL")

		return constant.Empty, fmt.Errorf("failed to presign spot photo URL: %w", err)
	}

	return presigned.URL, nil
}

func New(config *config.Config, otel otel.Otel) Media {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &mediaImpl{
		client:  s3Client,
		presign: s3.NewPresignClient(s3Client),
		config:  config,
		otel:    otel,
	}
}
