package cedra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/inferenco/cedra-randomness-demos/internal/clients/cedra"
	mockcedra "github.com/inferenco/cedra-randomness-demos/internal/clients/cedra/mock"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

const (
	testAddr  = "0xabc"
	testFunc  = "0xabc::game_examples::roll_dice"
	testHash  = "0x9f2c4e"
	testDice  = "0xabc::game_examples::DiceGame"
	testCards = "0xabc::game_examples::CardGame"
)

type ClientTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	runner *mockcedra.MockRunner
	client cedra.Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.runner = mockcedra.NewMockRunner(s.ctrl)
	s.ctx = context.Background()

	client, err := cedra.New(&cedra.Config{
		Runner:  s.runner,
		Binary:  "cedra",
		Profile: "testnet",
	})
	s.Require().NoError(err)
	s.client = client
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestVersion() {
	s.runner.EXPECT().Run(s.ctx, "cedra", "--version").Return([]byte("cedra 1.0.4\n"), nil, nil)

	version, err := s.client.Version(s.ctx)
	s.NoError(err)
	s.Equal("cedra 1.0.4", version)
}

func (s *ClientTestSuite) TestVersion_Missing() {
	s.runner.EXPECT().Run(s.ctx, "cedra", "--version").Return(nil, nil, errors.New(`exec: "cedra": executable file not found in $PATH`))

	_, err := s.client.Version(s.ctx)
	s.Error(err)
	s.Equal(dnderr.CodeToolUnavailable, dnderr.GetCode(err))
}

func (s *ClientTestSuite) TestRunFunction() {
	out := `{"Result":{"transaction_hash":"0x9f2c4e","sender":"0xabc","success":true,"vm_status":"Executed successfully","gas_used":42}}`
	s.runner.EXPECT().Run(s.ctx, "cedra",
		"move", "run", "--assume-yes",
		"--function-id", testFunc,
		"--profile", "testnet",
		"--args", "u64:6",
	).Return([]byte(out), nil, nil)

	sub, err := s.client.RunFunction(s.ctx, testFunc, cedra.U64(6))
	s.Require().NoError(err)
	s.Equal(testHash, sub.TransactionHash)
	s.True(sub.Success)
	s.Equal(int64(42), sub.GasUsed)
}

func (s *ClientTestSuite) TestRunFunction_NoArgs() {
	out := `{"Result":{"transaction_hash":"0x01","success":true}}`
	s.runner.EXPECT().Run(s.ctx, "cedra",
		"move", "run", "--assume-yes",
		"--function-id", testFunc,
		"--profile", "testnet",
	).Return([]byte(out), nil, nil)

	sub, err := s.client.RunFunction(s.ctx, testFunc)
	s.Require().NoError(err)
	s.Equal("0x01", sub.TransactionHash)
}

func (s *ClientTestSuite) TestRunFunction_Failures() {
	tests := []struct {
		name     string
		stdout   string
		stderr   string
		runErr   error
		wantCode dnderr.Code
	}{
		{
			name:     "non-zero exit",
			stderr:   "Profile inferenco not found",
			runErr:   errors.New("exit status 1"),
			wantCode: dnderr.CodeSubmission,
		},
		{
			name:     "not json",
			stdout:   "Transaction submitted",
			wantCode: dnderr.CodeParse,
		},
		{
			name:     "error envelope",
			stdout:   `{"Error":"Simulation failed with status: OUT_OF_GAS"}`,
			wantCode: dnderr.CodeSubmission,
		},
		{
			name:     "missing hash",
			stdout:   `{"Result":{"success":true}}`,
			wantCode: dnderr.CodeParse,
		},
		{
			name:     "hash not hex",
			stdout:   `{"Result":{"transaction_hash":"0xnothex"}}`,
			wantCode: dnderr.CodeParse,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.runner.EXPECT().Run(gomock.Any(), "cedra", gomock.Any()).
				Return([]byte(tt.stdout), []byte(tt.stderr), tt.runErr)

			_, err := s.client.RunFunction(s.ctx, testFunc)
			s.Require().Error(err)
			s.Equal(tt.wantCode, dnderr.GetCode(err))
		})
	}
}

func (s *ClientTestSuite) TestListResources() {
	out := `{"Result":[
		{"0x1::account::Account":{"sequence_number":"3"}},
		{"0xabc::game_examples::DiceGame":{"last_roll":"4"}},
		{"0xabc::game_examples::CardGame":{"player_hand":["1","2"]}}
	]}`
	s.runner.EXPECT().Run(s.ctx, "cedra",
		"account", "list",
		"--query", "resources",
		"--account", testAddr,
		"--profile", "testnet",
	).Return([]byte(out), nil, nil)

	resources, err := s.client.ListResources(s.ctx, testAddr)
	s.Require().NoError(err)
	s.Len(resources, 3)

	dice, ok := resources.Find(testDice)
	s.True(ok)
	s.JSONEq(`{"last_roll":"4"}`, string(dice))

	hand, ok := resources.Find(testCards)
	s.True(ok)
	s.JSONEq(`{"player_hand":["1","2"]}`, string(hand))

	_, ok = resources.Find("0xabc::game_examples::Missing")
	s.False(ok)
}

func (s *ClientTestSuite) TestListResources_Errors() {
	s.runner.EXPECT().Run(gomock.Any(), "cedra", gomock.Any()).Return(nil, []byte("boom"), errors.New("exit status 2"))
	_, err := s.client.ListResources(s.ctx, testAddr)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))

	s.runner.EXPECT().Run(gomock.Any(), "cedra", gomock.Any()).Return([]byte("{"), nil, nil)
	_, err = s.client.ListResources(s.ctx, testAddr)
	s.Equal(dnderr.CodeParse, dnderr.GetCode(err))

	_, err = s.client.ListResources(s.ctx, "")
	s.Equal(dnderr.CodeInvalidArgument, dnderr.GetCode(err))
}

func TestNew_Validation(t *testing.T) {
	_, err := cedra.New(nil)
	assert.Error(t, err)

	_, err = cedra.New(&cedra.Config{Profile: "testnet"})
	assert.Error(t, err)

	_, err = cedra.New(&cedra.Config{Binary: "cedra"})
	assert.Error(t, err)

	client, err := cedra.New(&cedra.Config{Binary: "cedra", Profile: "testnet"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "u64:10000", cedra.U64(10000).String())
	assert.Equal(t, testFunc, cedra.FunctionID(testAddr, "game_examples", "roll_dice"))
	assert.Equal(t, testDice, cedra.ResourceType(testAddr, "game_examples", "DiceGame"))

	assert.True(t, cedra.IsTransactionHash("0xDEADbeef01"))
	assert.False(t, cedra.IsTransactionHash("0x"))
	assert.False(t, cedra.IsTransactionHash("deadbeef"))
	assert.False(t, cedra.IsTransactionHash("0xzz"))
}
