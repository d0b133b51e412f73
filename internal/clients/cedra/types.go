package cedra

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Arg is a typed Move argument passed to --args
type Arg struct {
	Type  string
	Value string
}

// U64 builds a u64 argument
func U64(n uint64) Arg {
	return Arg{Type: "u64", Value: strconv.FormatUint(n, 10)}
}

// String renders the argument the way the CLI expects, e.g. "u64:6"
func (a Arg) String() string {
	return a.Type + ":" + a.Value
}

// FunctionID builds a fully qualified entry function name
func FunctionID(address, module, name string) string {
	return fmt.Sprintf("%s::%s::%s", address, module, name)
}

// ResourceType builds a fully qualified resource struct name
func ResourceType(address, module, name string) string {
	return FunctionID(address, module, name)
}

// Submission is the decoded result of `move run`
type Submission struct {
	TransactionHash string `json:"transaction_hash"`
	Sender          string `json:"sender"`
	Success         bool   `json:"success"`
	VMStatus        string `json:"vm_status"`
	GasUsed         int64  `json:"gas_used"`
}

type submissionEnvelope struct {
	Result *Submission `json:"Result"`
	Error  string      `json:"Error"`
}

// Resources is the account resource listing: each entry maps one fully
// qualified type name to that resource's fields.
type Resources []map[string]json.RawMessage

type resourcesEnvelope struct {
	Result Resources `json:"Result"`
}

// Find returns the fields of the first resource with the given type
func (r Resources) Find(resourceType string) (json.RawMessage, bool) {
	for _, entry := range r {
		if data, ok := entry[resourceType]; ok {
			return data, true
		}
	}
	return nil, false
}

// IsTransactionHash reports whether s is 0x followed by lowercase or uppercase hex
func IsTransactionHash(s string) bool {
	hex, ok := strings.CutPrefix(s, "0x")
	if !ok || hex == "" {
		return false
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
