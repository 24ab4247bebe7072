package ozonclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
)

const tokenPath = "/api/client/token"

var ErrEmptyToken = errors.New("token retornado pela API de anúncios é vazio")

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// TokenManager obtém o token da API de anúncios uma única vez.
// O token não é renovado durante a vida do cliente.
type TokenManager struct {
	client       marketplace.Client
	clientID     string
	clientSecret string

	mutex sync.Mutex
	token string
}

// NewTokenManager recebe um cliente sem autenticação apontando para a API de anúncios
func NewTokenManager(client marketplace.Client, clientID, clientSecret string) *TokenManager {
	return &TokenManager{
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (tm *TokenManager) Token(ctx context.Context) (string, error) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	if tm.token != "" {
		return tm.token, nil
	}

	var resp tokenResponse
	err := tm.client.Post(ctx, tokenPath, tokenRequest{
		ClientID:     tm.clientID,
		ClientSecret: tm.clientSecret,
		GrantType:    "client_credentials",
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("erro ao obter token da API de anúncios: %w", err)
	}

	if resp.AccessToken == "" {
		return "", ErrEmptyToken
	}

	logrus.WithFields(logrus.Fields{
		"client_id":  tm.clientID,
		"expires_in": resp.ExpiresIn,
	}).Debug("Token da API de anúncios obtido com sucesso")

	tm.token = resp.AccessToken
	return tm.token, nil
}
