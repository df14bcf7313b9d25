// Package ens resolves ENS-style names (ENS on mainnet, Basenames on Base) to addresses
// through the registry's resolver(bytes32) and the resolver's addr(bytes32). Names without
// their own resolver fall back to a parent's extended resolver (ENSIP-10 wildcards).
// Offchain (CCIP-read) answers are not followed.
package ens

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const registryABI = `[
	{"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"node","type":"bytes32"}],"name":"addr","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"interfaceID","type":"bytes4"}],"name":"supportsInterface","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"name","type":"bytes"},{"name":"data","type":"bytes"}],"name":"resolve","outputs":[{"name":"","type":"bytes"}],"stateMutability":"view","type":"function"}
]`

// extendedResolverID is the ERC-165 id of IExtendedResolver.resolve(bytes,bytes).
var extendedResolverID = [4]byte{0x90, 0x61, 0xb9, 0x23}

var (
	// ErrNoResolver means the registry has no resolver set for the name or any parent
	// able to answer for it.
	ErrNoResolver = errors.New("no resolver set for name")

	// ErrInvalidName is returned for names that cannot be DNS-encoded.
	ErrInvalidName = errors.New("invalid name")

	parsedABI abi.ABI
)

func init() {
	var err error
	parsedABI, err = abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		panic("ens: invalid registry ABI: " + err.Error())
	}
}

// ContractCaller is the subset of ethclient.Client used for read-only calls.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// NameHash computes the EIP-137 namehash of name. Labels are lowercased; no further
// normalization is applied.
func NameHash(name string) common.Hash {
	var node common.Hash
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), labelHash)
	}
	return node
}

// Registry reads a single ENS-compatible registry contract.
type Registry struct {
	caller  ContractCaller
	address common.Address
	logger  *zap.Logger
}

// NewRegistry binds a registry at address to caller.
func NewRegistry(caller ContractCaller, address common.Address, l *zap.Logger) *Registry {
	return &Registry{
		caller:  caller,
		address: address,
		logger:  logger.ForComponent(l, logger.ComponentResolver),
	}
}

// Address returns the registry contract address.
func (r *Registry) Address() common.Address {
	return r.address
}

// LookupAddress returns the address record of name. A zero address means the resolver
// has no record for it.
func (r *Registry) LookupAddress(ctx context.Context, name string) (common.Address, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	node := NameHash(name)

	resolver, owner, err := r.findResolver(ctx, name)
	if err != nil {
		return common.Address{}, err
	}
	if resolver == (common.Address{}) {
		return common.Address{}, ErrNoResolver
	}

	var addr common.Address
	if owner == name {
		addr, err = r.callAddress(ctx, resolver, "addr", [32]byte(node))
	} else {
		addr, err = r.resolveWildcard(ctx, resolver, name, node)
	}
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read address for %s from resolver %s: %w", name, resolver.Hex(), err)
	}

	r.logger.Debug("Name resolved",
		zap.String("name", name),
		zap.String("resolver_name", owner),
		zap.String("registry", r.address.Hex()),
		zap.String("resolver", resolver.Hex()),
		zap.String("address", addr.Hex()))

	return addr, nil
}

// findResolver walks from name towards its top-level label and returns the first
// resolver set, together with the name it is set on.
func (r *Registry) findResolver(ctx context.Context, name string) (common.Address, string, error) {
	for current := name; current != ""; {
		resolver, err := r.callAddress(ctx, r.address, "resolver", [32]byte(NameHash(current)))
		if err != nil {
			return common.Address{}, "", fmt.Errorf("failed to read resolver for %s: %w", current, err)
		}
		if resolver != (common.Address{}) {
			return resolver, current, nil
		}
		_, parent, found := strings.Cut(current, ".")
		if !found {
			break
		}
		current = parent
	}
	return common.Address{}, "", nil
}

// resolveWildcard asks a parent's resolver for name through IExtendedResolver.resolve.
func (r *Registry) resolveWildcard(ctx context.Context, resolver common.Address, name string, node common.Hash) (common.Address, error) {
	supported, err := r.call(ctx, resolver, "supportsInterface", extendedResolverID)
	if err != nil {
		return common.Address{}, ErrNoResolver
	}
	if ok, _ := supported[0].(bool); !ok {
		return common.Address{}, ErrNoResolver
	}

	encoded, err := DNSEncode(name)
	if err != nil {
		return common.Address{}, err
	}
	query, err := parsedABI.Pack("addr", [32]byte(node))
	if err != nil {
		return common.Address{}, err
	}

	out, err := r.call(ctx, resolver, "resolve", encoded, query)
	if err != nil {
		return common.Address{}, err
	}
	answer, ok := out[0].([]byte)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected resolve output type %T", out[0])
	}
	if len(answer) == 0 {
		return common.Address{}, nil
	}

	values, err := parsedABI.Unpack("addr", answer)
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected addr output type %T", values[0])
	}
	return addr, nil
}

// DNSEncode returns name in DNS wire format: length-prefixed labels ending with a zero byte.
func DNSEncode(name string) ([]byte, error) {
	out := make([]byte, 0, len(name)+2)
	if name != "" {
		for _, label := range strings.Split(name, ".") {
			if label == "" || len(label) > 255 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
			}
			out = append(out, byte(len(label)))
			out = append(out, label...)
		}
	}
	return append(out, 0), nil
}

func (r *Registry) callAddress(ctx context.Context, contract common.Address, method string, args ...interface{}) (common.Address, error) {
	values, err := r.call(ctx, contract, method, args...)
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected %s output type %T", method, values[0])
	}
	return addr, nil
}

// call packs args for method, performs an eth_call against contract and unpacks a
// single return value.
func (r *Registry) call(ctx context.Context, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	out, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	values, err := parsedABI.Unpack(method, out)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s output length %d", method, len(values))
	}
	return values, nil
}
