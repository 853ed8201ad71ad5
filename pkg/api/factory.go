package api

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// The default client is memoized so every handler in a process shares one
// instance. Initialization runs at most once concurrently; a failed
// initialization is not cached, so a later call retries.
var (
	defaultGroup singleflight.Group
	defaultMu    sync.RWMutex
	defaultAPI   Client
)

// Default returns the shared client, building it from cfg on first use.
// Concurrent first calls collapse into a single initialization.
func Default(cfg Config) (Client, error) {
	defaultMu.RLock()
	cached := defaultAPI
	defaultMu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := defaultGroup.Do("default", func() (any, error) {
		client, err := NewHTTPClient(cfg)
		if err != nil {
			return nil, err
		}
		defaultMu.Lock()
		defaultAPI = client
		defaultMu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Client), nil
}

// ResetDefault clears the memoized client. Intended for tests and for hosts
// that rotate credentials at runtime.
func ResetDefault() {
	defaultMu.Lock()
	defaultAPI = nil
	defaultMu.Unlock()
}
