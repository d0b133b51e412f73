// Package debugcmd is the cedra-debug command tree. It talks to the CLI, the
// indexer and the outcome journal directly, without any fallback, so failures
// surface with their full context.
package debugcmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inferenco/cedra-randomness-demos/internal/clients/cedra"
	"github.com/inferenco/cedra-randomness-demos/internal/clients/indexer"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
	"github.com/inferenco/cedra-randomness-demos/internal/journal"
	"github.com/inferenco/cedra-randomness-demos/internal/randomness"
)

// Deps are the collaborators the commands call
type Deps struct {
	CLI             cedra.Client
	Indexer         indexer.Client
	Journal         journal.Repository
	ContractAddress string
	Module          string
}

// NewRootCommand builds the cedra-debug command tree
func NewRootCommand(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "cedra-debug",
		Short: "Inspect the Cedra CLI, the game contract and recorded outcomes",
		Long: `cedra-debug runs the same calls the demos make, one at a time, and prints
the raw results. Nothing falls back to local randomness here.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newVersionCommand(deps),
		newRollCommand(deps),
		newResourcesCommand(deps),
		newTxCommand(deps),
		newHistoryCommand(deps),
	)
	return root
}

func newVersionCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Check that the cedra binary runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := deps.CLI.Version(cmd.Context())
			if err != nil {
				printError(cmd.ErrOrStderr(), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cedra: %s\n", version)
			return nil
		},
	}
}

func newRollCommand(deps *Deps) *cobra.Command {
	var sides uint64

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Submit roll_dice and print the submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sides == 0 {
				return dnderr.InvalidArgumentf("--sides must be at least 1")
			}

			functionID := cedra.FunctionID(deps.ContractAddress, deps.Module, randomness.FuncRollDice)
			fmt.Fprintf(cmd.OutOrStdout(), "Submitting %s with u64:%d\n", functionID, sides)

			sub, err := deps.CLI.RunFunction(cmd.Context(), functionID, cedra.U64(sides))
			if err != nil {
				printError(cmd.ErrOrStderr(), err)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sub)
		},
	}

	cmd.Flags().Uint64Var(&sides, "sides", 6, "Number of sides to roll")
	return cmd
}

func newResourcesCommand(deps *Deps) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the resources stored under an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if account == "" {
				account = deps.ContractAddress
			}

			resources, err := deps.CLI.ListResources(cmd.Context(), account)
			if err != nil {
				printError(cmd.ErrOrStderr(), err)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d resources under %s\n", len(resources), account)
			for _, resource := range resources {
				for _, resourceType := range sortedKeys(resource) {
					fmt.Fprintf(out, "\n%s\n", color.CyanString(resourceType))
					if err := writeIndented(out, resource[resourceType]); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Account address (defaults to the contract address)")
	return cmd
}

func newTxCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Fetch an indexed transaction by hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := deps.Indexer.TransactionByHash(cmd.Context(), args[0])
			if err != nil {
				if dnderr.IsNotFound(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Transaction %s is not indexed yet", args[0]))
				} else {
					printError(cmd.ErrOrStderr(), err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hash:      %s\n", tx.Hash)
			fmt.Fprintf(out, "Success:   %t\n", tx.Success)
			fmt.Fprintf(out, "VM status: %s\n", tx.VMStatus)
			fmt.Fprintf(out, "Events:    %d\n", len(tx.Events))
			for i, event := range tx.Events {
				fmt.Fprintf(out, "\n[%d] %s\n", i, event.Type)
				if err := writeIndented(out, event.Data); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newHistoryCommand(deps *Deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent recorded outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := deps.Journal.ListRecent(cmd.Context(), limit)
			if err != nil {
				printError(cmd.ErrOrStderr(), err)
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No outcomes recorded")
				return nil
			}

			for _, e := range entries {
				source := color.GreenString(e.Source)
				if e.Source != string(randomness.SourceChain) {
					source = color.YellowString(e.Source)
				}
				fmt.Fprintf(out, "%s  %-15s %-8s %s", e.CreatedAt.Format(time.RFC3339), e.Operation, source, e.Value)
				if e.TxHash != "" {
					fmt.Fprintf(out, "  tx=%s", e.TxHash)
				}
				if e.Reason != "" {
					fmt.Fprintf(out, "  reason=%q", e.Reason)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", journal.DefaultListLimit, "Number of outcomes to show")
	return cmd
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("ERROR:"), err)
	if stderr, ok := dnderr.GetMeta(err)["stderr"]; ok && stderr != "" {
		fmt.Fprintln(w, "--- STDERR ---")
		fmt.Fprintln(w, stderr)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return dnderr.Wrap(err, "failed to encode output")
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeIndented(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeParse, "failed to format JSON")
	}
	fmt.Fprintln(w, buf.String())
	return nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
