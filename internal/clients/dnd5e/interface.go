package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

// Monster is the part of a D&D 5e stat block the combat demo uses
type Monster struct {
	Key       string
	Name      string
	HitPoints int
}

type Client interface {
	GetMonster(key string) (*Monster, error)
}
