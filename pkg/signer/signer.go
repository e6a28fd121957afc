// Package signer turns queued transfers into signed, broadcast transactions.
package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/pkg/network"
)

// ErrNoWallet is returned when no signing key is configured.
var ErrNoWallet = errors.New("no wallet connected")

// Transfer is a single value movement. A nil Token means native currency.
type Transfer struct {
	To     common.Address
	Amount *big.Int
	Token  *common.Address
}

// Signer sends transfers and returns the broadcast transaction hash.
type Signer interface {
	Address() common.Address
	SendTransaction(ctx context.Context, t Transfer) (string, error)
}

// Network is the subset of the network client the signer needs.
type Network interface {
	TransactionCount(ctx context.Context, addr common.Address) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Config holds the gas limits used for native and token transfers.
type Config struct {
	GasLimit      uint64
	TokenGasLimit uint64
}

// KeyedSigner signs legacy transactions with a local ECDSA key.
type KeyedSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	network Network
	cfg     Config
	logger  *zap.Logger

	// serialises nonce lookup and broadcast so concurrent sends do not reuse a nonce
	mu      sync.Mutex
	chainID *big.Int
}

// New returns a KeyedSigner for hexKey, or ErrNoWallet when hexKey is empty.
func New(hexKey string, nw Network, cfg Config, logger *zap.Logger) (*KeyedSigner, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, ErrNoWallet
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse wallet key: %w", err)
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = 21000
	}
	if cfg.TokenGasLimit == 0 {
		cfg.TokenGasLimit = 100000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeyedSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		network: nw,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Address returns the sending account.
func (s *KeyedSigner) Address() common.Address {
	return s.address
}

// SendTransaction signs t for the current nonce and gas price and broadcasts it.
func (s *KeyedSigner) SendTransaction(ctx context.Context, t Transfer) (string, error) {
	if t.Amount == nil || t.Amount.Sign() <= 0 {
		return "", errors.New("transfer amount must be positive")
	}

	to, value, data, gasLimit := t.To, t.Amount, []byte(nil), s.cfg.GasLimit
	if t.Token != nil {
		packed, err := network.PackTransfer(t.To, t.Amount)
		if err != nil {
			return "", err
		}
		to, value, data, gasLimit = *t.Token, new(big.Int), packed, s.cfg.TokenGasLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chainID, err := s.resolveChainID(ctx)
	if err != nil {
		return "", err
	}
	nonce, err := s.network.TransactionCount(ctx, s.address)
	if err != nil {
		return "", fmt.Errorf("get nonce: %w", err)
	}
	gasPrice, err := s.network.GasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("get gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	if err := s.network.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("broadcast transaction: %w", err)
	}

	s.logger.Info("transfer broadcast",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", t.To.Hex()),
		zap.Uint64("nonce", nonce),
		zap.Bool("token", t.Token != nil))
	return signed.Hash().Hex(), nil
}

func (s *KeyedSigner) resolveChainID(ctx context.Context) (*big.Int, error) {
	if s.chainID != nil {
		return s.chainID, nil
	}
	id, err := s.network.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	s.chainID = id
	return id, nil
}
