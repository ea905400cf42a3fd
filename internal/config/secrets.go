// Package config provides configuration management for the Odds Radar
// application.
package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

const (
	errLoadAWSConfig           = "failed to load AWS config: %w"
	errGetSecretFromAWSSecrets = "failed to get secret from AWS Secrets Manager: %w"
	errParseSecretJSON         = "failed to parse secret JSON: %w"
	errParseSecretBinary       = "failed to parse secret binary: %w"
	errNoSecretDataFound       = "no secret data found in AWS Secrets Manager"
)

// SecretsOverlay represents the structure of secrets stored in AWS Secrets
// Manager. Only non-empty fields override the file configuration.
type SecretsOverlay struct {
	DatabaseURL      string `json:"database_url"`
	DatabasePassword string `json:"database_password"`
}

// fetchSecretsFromAWS retrieves secrets from AWS Secrets Manager
func fetchSecretsFromAWS(ctx context.Context, region string, secretName string) (*SecretsOverlay, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf(errLoadAWSConfig, err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}

	result, err := client.GetSecretValue(ctx, input)
	if err != nil {
		return nil, fmt.Errorf(errGetSecretFromAWSSecrets, err)
	}

	return parseSecretData(result)
}

// parseSecretData parses secret data from AWS response
func parseSecretData(result *secretsmanager.GetSecretValueOutput) (*SecretsOverlay, error) {
	var secrets SecretsOverlay
	if result.SecretString != nil {
		if err := json.Unmarshal([]byte(*result.SecretString), &secrets); err != nil {
			return nil, fmt.Errorf(errParseSecretJSON, err)
		}
	} else if result.SecretBinary != nil {
		if err := json.Unmarshal(result.SecretBinary, &secrets); err != nil {
			return nil, fmt.Errorf(errParseSecretBinary, err)
		}
	} else {
		return nil, fmt.Errorf(errNoSecretDataFound)
	}
	return &secrets, nil
}

// overlaySecretsOnConfig applies secrets to configuration
func overlaySecretsOnConfig(cfg *Config, secrets *SecretsOverlay) {
	if secrets.DatabaseURL != "" {
		cfg.Database.URL = secrets.DatabaseURL
	}
	if secrets.DatabasePassword != "" {
		cfg.Database.Password = secrets.DatabasePassword
	}
}

// LoadSecretsFromAWS retrieves secrets from AWS Secrets Manager and overlays
// them onto the configuration
func LoadSecretsFromAWS(cfg *Config, region string, secretName string) error {
	secrets, err := fetchSecretsFromAWS(context.Background(), region, secretName)
	if err != nil {
		return err
	}

	overlaySecretsOnConfig(cfg, secrets)
	return nil
}
