package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsShared(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	cfg := Config{BaseURL: "https://api.example.com", Logger: testLogger()}

	first, err := Default(cfg)
	require.NoError(t, err)
	second, err := Default(cfg)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestDefaultConcurrentFirstUse(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	cfg := Config{BaseURL: "https://api.example.com", Logger: testLogger()}

	const callers = 16
	clients := make([]Client, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, err := Default(cfg)
			assert.NoError(t, err)
			clients[i] = client
		}()
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, clients[0], clients[i])
	}
}

func TestDefaultFailureNotCached(t *testing.T) {
	t.Cleanup(ResetDefault)
	ResetDefault()

	_, err := Default(Config{})
	require.Error(t, err)

	// A later call with a valid configuration succeeds.
	client, err := Default(Config{BaseURL: "https://api.example.com", Logger: testLogger()})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
