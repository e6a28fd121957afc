package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrNotFound is returned when the node knows no such transaction or receipt.
	ErrNotFound = errors.New("not found")
	// ErrNoTransactions is returned when a savings estimate is requested for nothing.
	ErrNoTransactions = errors.New("no transactions to estimate")
)

// TransportError means the HTTP exchange with the node did not succeed.
// StatusCode is zero when no response was received at all.
type TransportError struct {
	Method     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: transport error: HTTP %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: transport error: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Method  string
	Code    int
	Message string
	Data    any
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: rpc error %d: %s", e.Method, e.Code, e.Message)
}

// ProtocolError means the node answered with neither a result nor an error,
// or with a body that is not valid JSON-RPC.
type ProtocolError struct {
	Method string
	Err    error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: protocol error: %v", e.Method, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// classify maps go-ethereum rpc failures onto the client's error types.
func classify(method string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ethereum.NotFound) {
		return fmt.Errorf("%s: %w", method, ErrNotFound)
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return &TransportError{Method: method, StatusCode: httpErr.StatusCode, Err: err}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		out := &RPCError{Method: method, Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
		var dataErr rpc.DataError
		if errors.As(err, &dataErr) {
			out.Data = dataErr.ErrorData()
		}
		return out
	}

	if errors.Is(err, rpc.ErrNoResult) {
		return &ProtocolError{Method: method, Err: err}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &ProtocolError{Method: method, Err: err}
	}

	return &TransportError{Method: method, Err: err}
}

// IsNetworkError reports whether err came from talking to the node.
func IsNetworkError(err error) bool {
	var te *TransportError
	var re *RPCError
	var pe *ProtocolError
	return errors.As(err, &te) || errors.As(err, &re) || errors.As(err, &pe)
}
