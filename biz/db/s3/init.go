package s3

import (
	"context"

	"userhub/be/biz/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var client *s3.Client

func Init() {
	conf := config.GetS3Conf()

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		panic(err)
	}

	client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(conf.BaseEndpoint)
		}
		// MinIO and most S3 compatible servers need path style addressing
		o.UsePathStyle = conf.UsePathStyle
	})

	hlog.Infof("s3 client ready: bucket=%s region=%s", conf.Bucket, conf.Region)
}

func GetClient() *s3.Client {
	return client
}
