package abi

import (
	"math/big"
	"strings"
	"testing"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterABI = `[{"type":"constructor","inputs":[{"name":"initialValue","type":"uint256"}],"stateMutability":"nonpayable"}]`

const timelockABI = `[{"type":"constructor","inputs":[
	{"name":"minDelay","type":"uint256"},
	{"name":"proposers","type":"address[]"},
	{"name":"executors","type":"address[]"},
	{"name":"admin","type":"address"}
],"stateMutability":"nonpayable"}]`

const mixedABI = `[{"type":"constructor","inputs":[
	{"name":"small","type":"uint8"},
	{"name":"signed","type":"int64"},
	{"name":"flag","type":"bool"},
	{"name":"label","type":"string"},
	{"name":"salt","type":"bytes4"}
],"stateMutability":"nonpayable"}]`

func mustParse(t *testing.T, raw string) *abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(raw))
	require.NoError(t, err)
	return &parsed
}

func TestEncodeConstructorArgs(t *testing.T) {
	counter := mustParse(t, counterABI)

	t.Run("uint256", func(t *testing.T) {
		encoded, err := EncodeConstructorArgs(counter, []any{big.NewInt(42)})
		require.NoError(t, err)
		assert.Equal(t, common.LeftPadBytes([]byte{42}, 32), encoded)
	})

	t.Run("negative value for unsigned input", func(t *testing.T) {
		_, err := EncodeConstructorArgs(counter, []any{big.NewInt(-1)})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrIntegerOutOfRange)
		assert.Contains(t, err.Error(), "initialValue")
	})

	t.Run("value wider than 256 bits", func(t *testing.T) {
		tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err := EncodeConstructorArgs(counter, []any{tooBig})
		assert.ErrorIs(t, err, domain.ErrIntegerOutOfRange)
	})

	t.Run("argument count mismatch", func(t *testing.T) {
		_, err := EncodeConstructorArgs(counter, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("timelock arguments", func(t *testing.T) {
		timelock := mustParse(t, timelockABI)
		proposer := common.HexToAddress("0x1111111111111111111111111111111111111111")

		encoded, err := EncodeConstructorArgs(timelock, []any{
			big.NewInt(3600),
			[]common.Address{proposer},
			[]common.Address{},
			common.Address{},
		})
		require.NoError(t, err)

		values, err := timelock.Constructor.Inputs.Unpack(encoded)
		require.NoError(t, err)
		require.Len(t, values, 4)
		assert.Equal(t, big.NewInt(3600), values[0])
		assert.Equal(t, []common.Address{proposer}, values[1])
		assert.Empty(t, values[2])
		assert.Equal(t, common.Address{}, values[3])
	})
}

func TestCoerceArgs(t *testing.T) {
	t.Run("counter initial value", func(t *testing.T) {
		args, err := CoerceArgs(mustParse(t, counterABI), []string{"42"})
		require.NoError(t, err)
		assert.Equal(t, []any{big.NewInt(42)}, args)
	})

	t.Run("hex integer", func(t *testing.T) {
		args, err := CoerceArgs(mustParse(t, counterABI), []string{"0x10"})
		require.NoError(t, err)
		assert.Equal(t, []any{big.NewInt(16)}, args)
	})

	t.Run("leading zero stays decimal", func(t *testing.T) {
		args, err := CoerceArgs(mustParse(t, counterABI), []string{"010"})
		require.NoError(t, err)
		assert.Equal(t, []any{big.NewInt(10)}, args)
	})

	t.Run("underscore separator", func(t *testing.T) {
		_, err := CoerceArgs(mustParse(t, counterABI), []string{"1_000"})
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("null list", func(t *testing.T) {
		_, err := CoerceArgs(mustParse(t, timelockABI), []string{"0", "null", "[]", "0x0000000000000000000000000000000000000000"})
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("negative initial value", func(t *testing.T) {
		_, err := CoerceArgs(mustParse(t, counterABI), []string{"-5"})
		assert.ErrorIs(t, err, domain.ErrIntegerOutOfRange)
	})

	t.Run("not an integer", func(t *testing.T) {
		_, err := CoerceArgs(mustParse(t, counterABI), []string{"abc"})
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("timelock lists", func(t *testing.T) {
		args, err := CoerceArgs(mustParse(t, timelockABI), []string{
			"0",
			`["0x1111111111111111111111111111111111111111"]`,
			"[]",
			"0x0000000000000000000000000000000000000000",
		})
		require.NoError(t, err)
		require.Len(t, args, 4)
		assert.Equal(t, []common.Address{common.HexToAddress("0x1111111111111111111111111111111111111111")}, args[1])
		assert.Equal(t, []common.Address{}, args[2])
		assert.Equal(t, common.Address{}, args[3])
	})

	t.Run("invalid list entry", func(t *testing.T) {
		_, err := CoerceArgs(mustParse(t, timelockABI), []string{"0", `["0x123"]`, "[]", "0x0000000000000000000000000000000000000000"})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("native sized types", func(t *testing.T) {
		args, err := CoerceArgs(mustParse(t, mixedABI), []string{"255", "-7", "true", "hello", "0xdeadbeef"})
		require.NoError(t, err)
		assert.Equal(t, uint8(255), args[0])
		assert.Equal(t, int64(-7), args[1])
		assert.Equal(t, true, args[2])
		assert.Equal(t, "hello", args[3])
		assert.Equal(t, [4]byte{0xde, 0xad, 0xbe, 0xef}, args[4])
	})

	t.Run("uint8 overflow", func(t *testing.T) {
		_, err := CoerceArgs(mustParse(t, mixedABI), []string{"256", "0", "true", "", "0x00000000"})
		assert.ErrorIs(t, err, domain.ErrIntegerOutOfRange)
	})
}
