package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

const VALKEY_NORMALIZED_PREFIX = "reddit:normalized:"

// ValkeyCache backs the normalization cache with a Valkey instance so a
// restarted process still hits on previously normalized collections.
type ValkeyCache struct {
	client valkey.Client
}

func DialValkey(addr, password string, useTLS bool) (*ValkeyCache, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{addr},
		Password:         password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyCache] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyCache] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyCache] Successfully connected to valkey")

	return &ValkeyCache{client: client}, nil
}

func (vc *ValkeyCache) Get(ctx context.Context, key string) ([]byte, bool) {
	res := vc.client.Do(ctx, vc.client.B().Get().Key(VALKEY_NORMALIZED_PREFIX+key).Build())
	if err := res.Error(); err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[ValkeyCache] Get failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	data, err := res.AsBytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (vc *ValkeyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := vc.client.B().Set().
		Key(VALKEY_NORMALIZED_PREFIX + key).
		Value(string(value)).
		Ex(ttl).
		Build()

	if err := vc.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("[ValkeyCache] Set failed for key %s: %w", key, err)
	}
	return nil
}

func (vc *ValkeyCache) Close() {
	vc.client.Close()
}
