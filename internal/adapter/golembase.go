// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/models"
)

// ChainAdapter bundles both collaborator roles of the Golem Base node:
// entity reads and wallet submissions go over the same JSON-RPC endpoint.
type ChainAdapter interface {
	StorageAdapter
	WalletAdapter
}

// golemBaseAdapter talks JSON-RPC to a Golem Base node. Reads use the
// golembase_* query methods; writes go through the node-managed account
// via the golembase_* entity methods, and confirmations through the
// standard eth_* receipt API.
type golemBaseAdapter struct {
	client  *resty.Client
	account string
	logger  *logger.Logger
}

// NewChainAdapter constructs a [ChainAdapter] for the configured node.
// Every round trip is bounded by cfg.RequestTimeout.
func NewChainAdapter(cfg config.Chain, log *logger.Logger) (ChainAdapter, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("chain adapter: empty RPC URL")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.RPCURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &golemBaseAdapter{client: cli, account: cfg.Account, logger: log}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcErrorBody   `json:"error"`
}

// call performs one JSON-RPC round trip and returns the raw result.
func (g *golemBaseAdapter) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	var body rpcResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(rpcRequest{JSONRPC: "2.0", ID: uuid.NewString(), Method: method, Params: params}).
		SetResult(&body).
		Post("")
	if err != nil {
		return nil, mapTransportError(method, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: http status %s", ErrRPC, method, resp.Status())
	}
	if body.Error != nil {
		return nil, mapNodeError(method, body.Error)
	}

	g.logger.Debug().Str("method", method).Msg("rpc call done")
	return body.Result, nil
}

func (g *golemBaseAdapter) GetEntityMetaData(ctx context.Context, entityID string) (models.EntityMetaData, error) {
	result, err := g.call(ctx, "golembase_getEntityMetaData", entityID)
	if err != nil {
		return models.EntityMetaData{}, err
	}
	if isNullResult(result) {
		return models.EntityMetaData{}, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}

	var meta models.EntityMetaData
	if err := json.Unmarshal(result, &meta); err != nil {
		return models.EntityMetaData{}, fmt.Errorf("%w: decode entity metadata: %v", ErrRPC, err)
	}
	return meta, nil
}

func (g *golemBaseAdapter) GetStorageValue(ctx context.Context, entityID string) ([]byte, error) {
	result, err := g.call(ctx, "golembase_getStorageValue", entityID)
	if err != nil {
		return nil, err
	}
	if isNullResult(result) {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}

	// the node returns the payload base64-encoded in a JSON string
	var encoded string
	if err := json.Unmarshal(result, &encoded); err != nil {
		return nil, fmt.Errorf("%w: decode storage value: %v", ErrRPC, err)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode storage value payload: %v", ErrRPC, err)
	}
	return data, nil
}

func (g *golemBaseAdapter) CurrentBlockNumber(ctx context.Context) (uint64, error) {
	result, err := g.call(ctx, "eth_getBlockByNumber", "latest", false)
	if err != nil {
		return 0, err
	}

	var block struct {
		Number string `json:"number"`
	}
	if err := json.Unmarshal(result, &block); err != nil || block.Number == "" {
		return 0, fmt.Errorf("%w: could not get current block number", ErrRPC)
	}
	number, err := models.ParseHexUint(block.Number)
	if err != nil {
		return 0, fmt.Errorf("%w: could not get current block number", ErrRPC)
	}
	return number, nil
}

// createEntityParams is the wire shape of one entity creation.
type createEntityParams struct {
	From               string                     `json:"from,omitempty"`
	TTL                uint64                     `json:"ttl"`
	Payload            string                     `json:"payload"`
	StringAnnotations  []models.StringAnnotation  `json:"stringAnnotations"`
	NumericAnnotations []models.NumericAnnotation `json:"numericAnnotations"`
}

func (g *golemBaseAdapter) SubmitCreate(ctx context.Context, submission models.StorageSubmission) (string, error) {
	params := createEntityParams{
		From:               g.account,
		TTL:                submission.TTLBlocks,
		Payload:            base64.StdEncoding.EncodeToString(submission.Data),
		StringAnnotations:  submission.StringAnnotations,
		NumericAnnotations: submission.NumericAnnotations,
	}

	result, err := g.call(ctx, "golembase_createEntity", params)
	if err != nil {
		return "", err
	}
	return decodeTxID(result)
}

func (g *golemBaseAdapter) SubmitExtend(ctx context.Context, entityID string, extendBy uint64) (string, error) {
	params := struct {
		From           string `json:"from,omitempty"`
		EntityKey      string `json:"entityKey"`
		NumberOfBlocks uint64 `json:"numberOfBlocks"`
	}{From: g.account, EntityKey: entityID, NumberOfBlocks: extendBy}

	result, err := g.call(ctx, "golembase_extendEntity", params)
	if err != nil {
		return "", err
	}
	return decodeTxID(result)
}

func (g *golemBaseAdapter) SubmitDelete(ctx context.Context, entityID string) (string, error) {
	params := struct {
		From      string `json:"from,omitempty"`
		EntityKey string `json:"entityKey"`
	}{From: g.account, EntityKey: entityID}

	result, err := g.call(ctx, "golembase_deleteEntity", params)
	if err != nil {
		return "", err
	}
	return decodeTxID(result)
}

func (g *golemBaseAdapter) GetReceipt(ctx context.Context, txID string) (models.Receipt, bool, error) {
	result, err := g.call(ctx, "eth_getTransactionReceipt", txID)
	if err != nil {
		return models.Receipt{}, false, err
	}
	if isNullResult(result) {
		// still pending
		return models.Receipt{}, false, nil
	}

	var receipt models.Receipt
	if err := json.Unmarshal(result, &receipt); err != nil {
		return models.Receipt{}, false, fmt.Errorf("%w: decode receipt: %v", ErrRPC, err)
	}
	return receipt, true, nil
}

func decodeTxID(result json.RawMessage) (string, error) {
	var txID string
	if err := json.Unmarshal(result, &txID); err != nil || txID == "" {
		return "", fmt.Errorf("%w: decode transaction id", ErrRPC)
	}
	return txID, nil
}

func isNullResult(result json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(result))
	return trimmed == "" || trimmed == "null"
}

func mapTransportError(method string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", ErrRPCTimeout, method, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrRPC, method, err)
}

func mapNodeError(method string, body *rpcErrorBody) error {
	if strings.Contains(strings.ToLower(body.Message), "not found") {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, body.Message)
	}
	return fmt.Errorf("%w: %s: %s (code %d)", ErrRPC, method, body.Message, body.Code)
}
