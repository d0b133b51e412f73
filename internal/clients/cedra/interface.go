package cedra

//go:generate mockgen -destination=mock/mock_client.go -package=mockcedra . Client

import "context"

// Client talks to the chain through the cedra CLI
type Client interface {
	// Version checks that the CLI is installed and working
	Version(ctx context.Context) (string, error)

	// RunFunction submits an entry function transaction
	RunFunction(ctx context.Context, functionID string, args ...Arg) (*Submission, error)

	// ListResources reads every resource stored under an account
	ListResources(ctx context.Context, account string) (Resources, error)
}
