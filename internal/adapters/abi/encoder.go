package abi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodeConstructorArgs packs typed constructor arguments. Integers are
// range checked against their ABI width first since Pack wraps negative
// values silently.
func EncodeConstructorArgs(parsed *abi.ABI, args []any) ([]byte, error) {
	inputs := parsed.Constructor.Inputs
	if len(args) != len(inputs) {
		return nil, fmt.Errorf("%w: constructor takes %d arguments, got %d", domain.ErrInvalidParameter, len(inputs), len(args))
	}

	normalized := make([]any, len(args))
	for i, arg := range args {
		v, err := normalize(inputs[i].Type, arg)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", argName(inputs[i], i), err)
		}
		normalized[i] = v
	}

	encoded, err := inputs.Pack(normalized...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}
	return encoded, nil
}

// CoerceArgs converts command line strings into values matching the
// constructor inputs. Arrays are given as JSON lists.
func CoerceArgs(parsed *abi.ABI, raw []string) ([]any, error) {
	inputs := parsed.Constructor.Inputs
	if len(raw) != len(inputs) {
		return nil, fmt.Errorf("%w: constructor takes %d arguments, got %d", domain.ErrInvalidParameter, len(inputs), len(raw))
	}

	args := make([]any, len(raw))
	for i, value := range raw {
		v, err := coerce(inputs[i].Type, value)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", argName(inputs[i], i), err)
		}
		args[i] = v
	}
	return args, nil
}

func argName(arg abi.Argument, i int) string {
	if arg.Name != "" {
		return arg.Name
	}
	return strconv.Itoa(i)
}

// normalize converts already typed values to what Pack expects for t
func normalize(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, ok := v.(*big.Int)
		if !ok {
			return v, nil
		}
		return fitInteger(t, n)
	case abi.SliceTy, abi.ArrayTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return v, nil
		}
		return buildList(t, rv.Len(), func(i int) (any, error) {
			return normalize(*t.Elem, rv.Index(i).Interface())
		})
	default:
		return v, nil
	}
}

func coerce(t abi.Type, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, err := domain.ParseInteger(t.String(), raw)
		if err != nil {
			return nil, err
		}
		return fitInteger(t, n)
	case abi.AddressTy:
		if !domain.IsValidAddress(raw) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, raw)
		}
		return common.HexToAddress(raw), nil
	case abi.BoolTy:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot convert %q to bool", domain.ErrInvalidParameter, raw)
		}
		return b, nil
	case abi.StringTy:
		return raw, nil
	case abi.BytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err)
		}
		return b, nil
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidParameter, err)
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", domain.ErrInvalidParameter, t.Size, len(b))
		}
		out := reflect.New(t.GetType()).Elem()
		reflect.Copy(out, reflect.ValueOf(b))
		return out.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		items, err := splitList(raw)
		if err != nil {
			return nil, err
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return nil, fmt.Errorf("%w: expected %d items, got %d", domain.ErrInvalidParameter, t.Size, len(items))
		}
		return buildList(t, len(items), func(i int) (any, error) {
			return coerce(*t.Elem, items[i])
		})
	default:
		return nil, fmt.Errorf("%w: unsupported argument type %s", domain.ErrInvalidParameter, t.String())
	}
}

// splitList decodes a JSON list, keeping nested values as raw text
func splitList(raw string) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return nil, fmt.Errorf("%w: %q is not a JSON list", domain.ErrInvalidParameter, raw)
	}

	out := make([]string, len(items))
	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out[i] = s
			continue
		}
		out[i] = string(item)
	}
	return out, nil
}

func buildList(t abi.Type, n int, item func(i int) (any, error)) (any, error) {
	goType := t.GetType()

	var out reflect.Value
	if t.T == abi.ArrayTy {
		out = reflect.New(goType).Elem()
	} else {
		out = reflect.MakeSlice(goType, n, n)
	}

	for i := 0; i < n; i++ {
		v, err := item(i)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(goType.Elem()) {
			return nil, fmt.Errorf("%w: cannot use %T as %s", domain.ErrInvalidParameter, v, t.Elem.String())
		}
		out.Index(i).Set(rv)
	}
	return out.Interface(), nil
}

// fitInteger range checks n against t and returns the Go type Pack expects
func fitInteger(t abi.Type, n *big.Int) (any, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("%w: %s does not fit %s", domain.ErrIntegerOutOfRange, n.String(), t.String())
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		minValue := new(big.Int).Neg(limit)
		maxValue := new(big.Int).Sub(limit, big.NewInt(1))
		if n.Cmp(minValue) < 0 || n.Cmp(maxValue) > 0 {
			return nil, fmt.Errorf("%w: %s does not fit %s", domain.ErrIntegerOutOfRange, n.String(), t.String())
		}
	}

	goType := t.GetType()
	if goType == reflect.TypeOf(n) {
		return new(big.Int).Set(n), nil
	}

	out := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		out.SetUint(n.Uint64())
	} else {
		out.SetInt(n.Int64())
	}
	return out.Interface(), nil
}
