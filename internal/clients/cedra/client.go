package cedra

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/fatih/color"

	internal "github.com/inferenco/cedra-randomness-demos/internal"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

type client struct {
	runner  Runner
	binary  string
	profile string
}

// Config holds configuration for the CLI client
type Config struct {
	Runner  Runner // Optional - defaults to os/exec
	Binary  string
	Profile string
}

// New creates a CLI-backed client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Binary == "" {
		return nil, internal.NewMissingParamError("cfg.Binary")
	}
	if cfg.Profile == "" {
		return nil, internal.NewMissingParamError("cfg.Profile")
	}

	runner := cfg.Runner
	if runner == nil {
		runner = NewExecRunner()
	}

	return &client{
		runner:  runner,
		binary:  cfg.Binary,
		profile: cfg.Profile,
	}, nil
}

func (c *client) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.runner.Run(ctx, c.binary, "--version")
	if err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeToolUnavailable, "cedra CLI not available").
			WithMeta("binary", c.binary)
	}

	return strings.TrimSpace(string(stdout)), nil
}

func (c *client) RunFunction(ctx context.Context, functionID string, args ...Arg) (*Submission, error) {
	if functionID == "" {
		return nil, dnderr.InvalidArgumentf("function id is required")
	}

	cmdArgs := []string{
		"move", "run",
		"--assume-yes",
		"--function-id", functionID,
		"--profile", c.profile,
	}
	for _, arg := range args {
		cmdArgs = append(cmdArgs, "--args", arg.String())
	}

	stdout, stderr, err := c.runner.Run(ctx, c.binary, cmdArgs...)
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		log.Printf("Error executing transaction %s: %s", functionID, msg)
		if strings.Contains(msg, "Profile") && strings.Contains(msg, "not found") {
			log.Println(color.YellowString("[TIP] Ensure you compiled with named addresses or use full address."))
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeSubmission, "transaction submission failed").
			WithMeta("function_id", functionID).
			WithMeta("stderr", msg)
	}

	var envelope submissionEnvelope
	if err := json.Unmarshal(stdout, &envelope); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "decode submission output").
			WithMeta("function_id", functionID)
	}
	if envelope.Result == nil {
		if envelope.Error != "" {
			return nil, dnderr.Newf(dnderr.CodeSubmission, "transaction rejected: %s", envelope.Error).
				WithMeta("function_id", functionID)
		}
		return nil, dnderr.Parsef("submission output has no Result").WithMeta("function_id", functionID)
	}

	if !IsTransactionHash(envelope.Result.TransactionHash) {
		return nil, dnderr.Parsef("invalid transaction hash %q", envelope.Result.TransactionHash).
			WithMeta("function_id", functionID)
	}

	return envelope.Result, nil
}

func (c *client) ListResources(ctx context.Context, account string) (Resources, error) {
	if account == "" {
		return nil, dnderr.InvalidArgumentf("account is required")
	}

	stdout, stderr, err := c.runner.Run(ctx, c.binary,
		"account", "list",
		"--query", "resources",
		"--account", account,
		"--profile", c.profile,
	)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "list account resources").
			WithMeta("account", account).
			WithMeta("stderr", strings.TrimSpace(string(stderr)))
	}

	var envelope resourcesEnvelope
	if err := json.Unmarshal(stdout, &envelope); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "decode resource listing").
			WithMeta("account", account)
	}

	return envelope.Result, nil
}
