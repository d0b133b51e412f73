package dnd5e

import (
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	internal "github.com/inferenco/cedra-randomness-demos/internal"
)

// TODO: add context to functions once the upstream client accepts one
type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetMonster(key string) (*Monster, error) {
	if key == "" {
		return nil, internal.NewMissingParamError("key")
	}

	response, err := c.client.GetMonster(key)
	if err != nil {
		return nil, err
	}

	return apiToMonster(response), nil
}

func apiToMonster(input *apiEntities.Monster) *Monster {
	if input == nil {
		return nil
	}

	return &Monster{
		Key:       input.Key,
		Name:      input.Name,
		HitPoints: int(input.HitPoints),
	}
}
