// Package randomness asks the game contract for random outcomes and degrades
// to local randomness whenever the CLI, the chain or the indexer lets it down.
package randomness

import (
	"context"
	"encoding/json"
	"log"

	"github.com/fatih/color"

	internal "github.com/inferenco/cedra-randomness-demos/internal"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/cedra"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/indexer"
	"github.com/inferenco/cedra-randomness-demos/internal/dice"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/shared"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
	"github.com/inferenco/cedra-randomness-demos/internal/journal"
	"github.com/inferenco/cedra-randomness-demos/internal/poll"
	"github.com/inferenco/cedra-randomness-demos/internal/uuid"
)

// Contract entry points and resources used by the demos
const (
	FuncRollDice      = "roll_dice"
	FuncOpenLootBox   = "open_loot_box"
	FuncStartCardGame = "start_card_game"

	ResourceDiceGame = "DiceGame"
	ResourceCardGame = "CardGame"
)

// Journal operation names
const (
	OpRoll          = "roll"
	OpRollPair      = "roll_pair"
	OpFlip          = "flip"
	OpOpenContainer = "open_container"
	OpDealHand      = "deal_hand"
	OpResolveAttack = "resolve_attack"
)

// ProviderConfig holds the provider's collaborators
type ProviderConfig struct {
	CLI             cedra.Client
	Indexer         indexer.Client
	Roller          dice.Roller
	Journal         journal.Repository // Optional
	Poll            poll.Policy
	ContractAddress string
	Module          string
	IDs             uuid.Generator // Optional - defaults to random UUIDs
}

// Provider is one session against the contract. It is built once per
// process and passed to whatever needs randomness.
type Provider struct {
	cli       cedra.Client
	indexer   indexer.Client
	roller    dice.Roller
	journal   journal.Repository
	poll      poll.Policy
	address   string
	module    string
	ids       uuid.Generator
	simulated bool
	simReason error
}

// NewProvider validates the config and runs the one-time CLI availability
// check. A missing or broken CLI is not an error: the provider switches to
// simulation mode and never touches the CLI or the indexer again.
func NewProvider(ctx context.Context, cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.CLI == nil {
		return nil, internal.NewMissingParamError("cfg.CLI")
	}
	if cfg.Indexer == nil {
		return nil, internal.NewMissingParamError("cfg.Indexer")
	}
	if cfg.Roller == nil {
		return nil, internal.NewMissingParamError("cfg.Roller")
	}
	if cfg.ContractAddress == "" {
		return nil, internal.NewMissingParamError("cfg.ContractAddress")
	}
	if cfg.Module == "" {
		return nil, internal.NewMissingParamError("cfg.Module")
	}

	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	p := &Provider{
		cli:     cfg.CLI,
		indexer: cfg.Indexer,
		roller:  cfg.Roller,
		journal: cfg.Journal,
		poll:    cfg.Poll,
		address: cfg.ContractAddress,
		module:  cfg.Module,
		ids:     ids,
	}

	if _, err := p.cli.Version(ctx); err != nil {
		log.Println(color.YellowString("[WARN] Cedra CLI not found or failed. Falling back to local simulation mode."))
		p.simulated = true
		p.simReason = err
	}

	return p, nil
}

// SimulationMode reports whether the CLI check failed at construction
func (p *Provider) SimulationMode() bool {
	return p.simulated
}

// ContractAddress is the account whose resources hold game state
func (p *Provider) ContractAddress() string {
	return p.address
}

func (p *Provider) functionID(name string) string {
	return cedra.FunctionID(p.address, p.module, name)
}

func (p *Provider) resourceType(name string) string {
	return cedra.ResourceType(p.address, p.module, name)
}

// submit runs an entry function unless the session is simulated
func (p *Provider) submit(ctx context.Context, name string, args ...cedra.Arg) (*cedra.Submission, error) {
	if p.simulated {
		return nil, p.simReason
	}

	sub, err := p.cli.RunFunction(ctx, p.functionID(name), args...)
	if err != nil {
		return nil, err
	}
	if !sub.Success {
		status := sub.VMStatus
		if status == "" {
			status = "no vm_status reported"
		}
		return nil, dnderr.Newf(dnderr.CodeSubmission, "transaction %s failed: %s", sub.TransactionHash, status).
			WithMeta("tx_hash", sub.TransactionHash)
	}
	return sub, nil
}

// readResource decodes the fields of one of the contract's resources into out
func (p *Provider) readResource(ctx context.Context, name string, out any) error {
	resources, err := p.cli.ListResources(ctx, p.address)
	if err != nil {
		return err
	}

	resourceType := p.resourceType(name)
	data, ok := resources.Find(resourceType)
	if !ok {
		return dnderr.Parsef("resource %s not found", resourceType)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeParse, "decode resource").
			WithMeta("resource", resourceType)
	}
	return nil
}

// waitForTransaction polls the indexer until the transaction shows up
func (p *Provider) waitForTransaction(ctx context.Context, hash string) (*indexer.Transaction, error) {
	tx, attempts, err := poll.Do(ctx, p.poll,
		func(ctx context.Context, _ int) (*indexer.Transaction, error) {
			return p.indexer.TransactionByHash(ctx, hash)
		},
		dnderr.IsNotFound,
	)
	if err != nil {
		if dnderr.Is(err, dnderr.CodeIndexTimeout) {
			log.Printf("Timeout waiting for transaction %s to be indexed after %d attempts", hash, attempts)
		}
		return nil, err
	}
	return tx, nil
}

// lastRoll is the DiceGame resource
type lastRoll struct {
	LastRoll *shared.MoveInt `json:"last_roll"`
}

// playerHand is the CardGame resource
type playerHand struct {
	PlayerHand []shared.MoveInt `json:"player_hand"`
}
