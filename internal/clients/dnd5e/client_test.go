package dnd5e_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferenco/cedra-randomness-demos/internal/clients/dnd5e"
)

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network unreachable")
}

func TestNew_Validation(t *testing.T) {
	_, err := dnd5e.New(nil)
	assert.Error(t, err)
}

func TestGetMonster_TransportError(t *testing.T) {
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Transport: failingTransport{}},
	})
	require.NoError(t, err)

	monster, err := client.GetMonster("boar")
	assert.Error(t, err)
	assert.Nil(t, monster)

	_, err = client.GetMonster("")
	assert.Error(t, err)
}
