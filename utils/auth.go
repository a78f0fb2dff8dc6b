package utils

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"regexp"

	"streakkeeper/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// ExtractNameFromEmail extracts the username before '@'
func ExtractNameFromEmail(email string) string {
	re := regexp.MustCompile(`^([^@]+)`)
	match := re.FindStringSubmatch(email)
	if len(match) < 2 {
		return email
	}
	return match[1]
}

// GenerateSecretHash computes the Cognito client secret hash for a username
func GenerateSecretHash(username, clientID, clientSecret string) string {
	key := []byte(clientSecret)
	message := username + clientID

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidateTokenAndFetchEmail verifies an access token against Cognito and
// returns the email attribute of the token's user.
func ValidateTokenAndFetchEmail(ctx context.Context, cfg *config.Config, token string) (bool, string, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Cognito.Region))
	if err != nil {
		return false, "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	cognitoClient := cognitoidentityprovider.NewFromConfig(awsCfg)
	user, err := cognitoClient.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		return false, "", fmt.Errorf("token validation failed: %w", err)
	}

	for _, attribute := range user.UserAttributes {
		if aws.ToString(attribute.Name) == "email" {
			return true, aws.ToString(attribute.Value), nil
		}
	}
	// Fall back to the Cognito username when no email attribute is present
	return true, aws.ToString(user.Username), nil
}
