package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

const listPageSize int32 = 60

// IdentityProvider mints and checks bearer tokens.
type IdentityProvider interface {
	// Authenticate signs in with a username and password and returns the access token.
	Authenticate(ctx context.Context, clientID, username, password string) (string, error)
	// VerifyToken asks the provider whether token is still accepted.
	VerifyToken(ctx context.Context, token string) error
	FindUserPoolID(ctx context.Context, poolName string) (string, bool, error)
	FindClientID(ctx context.Context, userPoolID, clientName string) (string, bool, error)
}

// CognitoAPI is the subset of the Cognito user pools client we call.
type CognitoAPI interface {
	InitiateAuth(ctx context.Context, in *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	GetUser(ctx context.Context, in *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
	ListUserPools(ctx context.Context, in *cip.ListUserPoolsInput, optFns ...func(*cip.Options)) (*cip.ListUserPoolsOutput, error)
	ListUserPoolClients(ctx context.Context, in *cip.ListUserPoolClientsInput, optFns ...func(*cip.Options)) (*cip.ListUserPoolClientsOutput, error)
}

// CognitoIdentityProvider implements IdentityProvider with Cognito user pools.
type CognitoIdentityProvider struct {
	client CognitoAPI
}

// NewCognitoIdentityProvider wraps a Cognito user pools client.
func NewCognitoIdentityProvider(client CognitoAPI) *CognitoIdentityProvider {
	return &CognitoIdentityProvider{client: client}
}

// Authenticate runs USER_PASSWORD_AUTH. The app client must allow that flow.
func (c *CognitoIdentityProvider) Authenticate(ctx context.Context, clientID, username, password string) (string, error) {
	out, err := c.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		ClientId: aws.String(clientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return "", fmt.Errorf("cognito initiate auth: %w", err)
	}
	if out.AuthenticationResult == nil || aws.ToString(out.AuthenticationResult.AccessToken) == "" {
		// a challenge (e.g. NEW_PASSWORD_REQUIRED) comes back without tokens
		return "", fmt.Errorf("cognito initiate auth: no access token returned (challenge %q)", string(out.ChallengeName))
	}
	return aws.ToString(out.AuthenticationResult.AccessToken), nil
}

// VerifyToken calls GetUser, which Cognito rejects for revoked or expired tokens.
func (c *CognitoIdentityProvider) VerifyToken(ctx context.Context, token string) error {
	_, err := c.client.GetUser(ctx, &cip.GetUserInput{AccessToken: aws.String(token)})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		if errors.As(err, &notAuthorized) {
			return fmt.Errorf("token rejected: %w", err)
		}
		return fmt.Errorf("cognito get user: %w", err)
	}
	return nil
}

// FindUserPoolID returns the ID of the first user pool named poolName.
func (c *CognitoIdentityProvider) FindUserPoolID(ctx context.Context, poolName string) (string, bool, error) {
	var next *string
	for {
		out, err := c.client.ListUserPools(ctx, &cip.ListUserPoolsInput{
			MaxResults: aws.Int32(listPageSize),
			NextToken:  next,
		})
		if err != nil {
			return "", false, fmt.Errorf("cognito list user pools: %w", err)
		}
		for _, pool := range out.UserPools {
			if aws.ToString(pool.Name) == poolName {
				return aws.ToString(pool.Id), true, nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return "", false, nil
		}
		next = out.NextToken
	}
}

// FindClientID returns the ID of the app client named clientName.
func (c *CognitoIdentityProvider) FindClientID(ctx context.Context, userPoolID, clientName string) (string, bool, error) {
	var next *string
	for {
		out, err := c.client.ListUserPoolClients(ctx, &cip.ListUserPoolClientsInput{
			UserPoolId: aws.String(userPoolID),
			MaxResults: aws.Int32(listPageSize),
			NextToken:  next,
		})
		if err != nil {
			return "", false, fmt.Errorf("cognito list user pool clients: %w", err)
		}
		for _, client := range out.UserPoolClients {
			if aws.ToString(client.ClientName) == clientName {
				return aws.ToString(client.ClientId), true, nil
			}
		}
		if aws.ToString(out.NextToken) == "" {
			return "", false, nil
		}
		next = out.NextToken
	}
}
