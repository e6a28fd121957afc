package network

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20TransferABI = `[{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"}]`

var erc20ABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(erc20TransferABI))
	if err != nil {
		panic(fmt.Sprintf("network: parse erc20 abi: %v", err))
	}
	erc20ABI = parsed
}

// PackTransfer encodes an ERC-20 transfer(to, amount) call.
func PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	data, err := erc20ABI.Pack("transfer", to, amount)
	if err != nil {
		return nil, fmt.Errorf("pack erc20 transfer: %w", err)
	}
	return data, nil
}

// TransferRequest builds the call object that moves amount from sender to
// recipient, either natively or through the token contract when token is set.
func TransferRequest(from, to common.Address, amount *big.Int, token *common.Address) (TxRequest, error) {
	if token == nil {
		recipient := to
		return TxRequest{From: from, To: &recipient, Value: amount}, nil
	}
	data, err := PackTransfer(to, amount)
	if err != nil {
		return TxRequest{}, err
	}
	contract := *token
	return TxRequest{From: from, To: &contract, Value: new(big.Int), Data: data}, nil
}
