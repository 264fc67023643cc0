package database

import (
	"context"

	"vaif_quotes/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultRegion = "us-east-1"
	localKey      = "local"
)

// NewDynamoDBClient creates a DynamoDB client from the AWS section of the config.
//
// When DynamoDBEndpoint is set (DynamoDB Local, LocalStack) the client targets it
// and falls back to static "local" credentials, which the emulators accept.
func NewDynamoDBClient(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}

	accessKey, secretKey := cfg.AccessKeyID, cfg.SecretAccessKey
	if cfg.DynamoDBEndpoint != "" {
		if accessKey == "" {
			accessKey = localKey
		}
		if secretKey == "" {
			secretKey = localKey
		}
	}
	if accessKey != "" && secretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	if endpoint := cfg.DynamoDBEndpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
