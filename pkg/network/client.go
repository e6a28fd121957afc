// Package network is a typed JSON-RPC client for an EVM-compatible,
// Shardeum-style network node.
package network

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/internal/metrics"
)

// Client talks to a single node. It is safe for concurrent use.
type Client struct {
	rpc      *rpc.Client
	eth      *ethclient.Client
	settings settings
}

// TxRequest is a call object for gas estimation.
type TxRequest struct {
	From  common.Address
	To    *common.Address
	Value *big.Int
	Data  []byte
}

// Dial connects to the node at url. No request is sent until the first call.
func Dial(ctx context.Context, url string, opts ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("network: rpc url is required")
	}
	s, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("network: apply options: %w", err)
	}
	rc, err := rpc.DialOptions(ctx, url, rpc.WithHTTPClient(s.httpClient))
	if err != nil {
		return nil, fmt.Errorf("network: dial %s: %w", url, err)
	}
	return &Client{rpc: rc, eth: ethclient.NewClient(rc), settings: s}, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.rpc.Close()
}

// Call performs a raw JSON-RPC request and decodes the result into result.
func (c *Client) Call(ctx context.Context, result any, method string, params ...any) error {
	return c.observe(method, func() error {
		return c.rpc.CallContext(ctx, result, method, params...)
	})
}

func (c *Client) observe(method string, fn func() error) error {
	start := time.Now()
	err := classify(method, fn())
	metrics.RPCDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	outcome := "ok"
	var (
		te *TransportError
		re *RPCError
		pe *ProtocolError
	)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.As(err, &te):
		outcome = "transport_error"
	case errors.As(err, &re):
		outcome = "rpc_error"
	case errors.As(err, &pe):
		outcome = "protocol_error"
	}
	metrics.RPCRequests.WithLabelValues(method, outcome).Inc()

	if err != nil && !errors.Is(err, ErrNotFound) {
		c.settings.logger.Debug("rpc call failed", zap.String("method", method), zap.Error(err))
	}
	return err
}

// GasPrice returns the node's suggested gas price in wei.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	var price *big.Int
	err := c.observe("eth_gasPrice", func() (err error) {
		price, err = c.eth.SuggestGasPrice(ctx)
		return err
	})
	return price, err
}

// EstimateGas returns the gas the node expects req to consume.
func (c *Client) EstimateGas(ctx context.Context, req TxRequest) (uint64, error) {
	var gas uint64
	err := c.observe("eth_estimateGas", func() (err error) {
		gas, err = c.eth.EstimateGas(ctx, ethereum.CallMsg{
			From:  req.From,
			To:    req.To,
			Value: req.Value,
			Data:  req.Data,
		})
		return err
	})
	return gas, err
}

// ChainID returns the chain id used for replay protection.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var id *big.Int
	err := c.observe("eth_chainId", func() (err error) {
		id, err = c.eth.ChainID(ctx)
		return err
	})
	return id, err
}

// BlockNumber returns the latest block height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var n uint64
	err := c.observe("eth_blockNumber", func() (err error) {
		n, err = c.eth.BlockNumber(ctx)
		return err
	})
	return n, err
}

// Balance returns the latest balance of addr in wei.
func (c *Client) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	var bal *big.Int
	err := c.observe("eth_getBalance", func() (err error) {
		bal, err = c.eth.BalanceAt(ctx, addr, nil)
		return err
	})
	return bal, err
}

// TransactionCount returns the pending nonce of addr.
func (c *Client) TransactionCount(ctx context.Context, addr common.Address) (uint64, error) {
	var nonce uint64
	err := c.observe("eth_getTransactionCount", func() (err error) {
		nonce, err = c.eth.PendingNonceAt(ctx, addr)
		return err
	})
	return nonce, err
}

// SendRawTransaction broadcasts an RLP-encoded signed transaction and
// returns its hash.
func (c *Client) SendRawTransaction(ctx context.Context, raw hexutil.Bytes) (common.Hash, error) {
	var hash common.Hash
	err := c.Call(ctx, &hash, "eth_sendRawTransaction", raw)
	return hash, err
}

// SendTransaction broadcasts a signed transaction.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.observe("eth_sendRawTransaction", func() error {
		return c.eth.SendTransaction(ctx, tx)
	})
}

// TransactionByHash returns ErrNotFound when the node does not know hash.
func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	var (
		tx      *types.Transaction
		pending bool
	)
	err := c.observe("eth_getTransactionByHash", func() (err error) {
		tx, pending, err = c.eth.TransactionByHash(ctx, hash)
		return err
	})
	return tx, pending, err
}

// TransactionReceipt returns ErrNotFound until the transaction is mined.
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.observe("eth_getTransactionReceipt", func() (err error) {
		receipt, err = c.eth.TransactionReceipt(ctx, hash)
		return err
	})
	return receipt, err
}

// ChainInfo is the chain id together with the latest block.
type ChainInfo struct {
	ChainID     *big.Int `json:"chainId"`
	BlockNumber uint64   `json:"blockNumber"`
}

// ChainInfo returns the chain id and latest block number.
func (c *Client) ChainInfo(ctx context.Context) (*ChainInfo, error) {
	id, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	n, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return &ChainInfo{ChainID: id, BlockNumber: n}, nil
}
