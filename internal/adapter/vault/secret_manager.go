package vault

import (
	"context"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/seu-repo/moto-frota/internal/ports"
)

type SecretManager struct {
	client *api.Client
}

func NewSecretManager(address, token string) (ports.SecretManager, error) {
	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)

	return &SecretManager{client: client}, nil
}

func (sm *SecretManager) GetSecret(ctx context.Context, path, key string) (string, error) {
	secret, err := sm.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault: no secret at %s", path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("vault: unexpected secret format at %s", path)
	}
	value, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("vault: key %s not found at %s", key, path)
	}
	return value, nil
}

func (sm *SecretManager) GetDatabaseURL(ctx context.Context) (string, error) {
	return sm.GetSecret(ctx, "secret/data/database", "connection_string")
}

func (sm *SecretManager) GetJWTSecret(ctx context.Context) (string, error) {
	return sm.GetSecret(ctx, "secret/data/jwt", "signing_key")
}
