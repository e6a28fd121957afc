package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Node is one entry of shardeum_getNodeList.
type Node struct {
	ID        string `json:"id"`
	IP        string `json:"ip"`
	Port      int    `json:"port"`
	PublicKey string `json:"publicKey"`
	Status    string `json:"status"`
}

// Active reports whether the node participates in consensus.
func (n Node) Active() bool {
	return n.Status == "" || strings.EqualFold(n.Status, "active")
}

// NodeList is one page of the network's node list.
type NodeList struct {
	Nodes      []Node `json:"nodeList"`
	TotalNodes int    `json:"totalNodes"`
}

// CycleInfo describes the latest consensus cycle.
type CycleInfo struct {
	Counter  uint64    `json:"counter"`
	Start    time.Time `json:"start"`
	Duration int64     `json:"duration"`
	Active   int       `json:"active"`
	Mode     string    `json:"mode,omitempty"`
}

type cycleRecord struct {
	Counter  uint64 `json:"counter"`
	Start    int64  `json:"start"`
	Duration int64  `json:"duration"`
	Active   int    `json:"active"`
	Mode     string `json:"mode"`
}

// NodeList fetches page (1-based) of the node list; limit falls back to the
// configured default when not positive.
func (c *Client) NodeList(ctx context.Context, page, limit int) (*NodeList, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = c.settings.NodeListLimit
	}
	var out NodeList
	if err := c.Call(ctx, &out, "shardeum_getNodeList", map[string]int{"page": page, "limit": limit}); err != nil {
		return nil, err
	}
	if out.TotalNodes == 0 {
		out.TotalNodes = len(out.Nodes)
	}
	return &out, nil
}

// NetworkAccount returns the network parameters account as the node reports it.
func (c *Client) NetworkAccount(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.Call(ctx, &out, "shardeum_getNetworkAccount"); err != nil {
		return nil, err
	}
	return out, nil
}

// CycleInfo returns the most recent consensus cycle.
func (c *Client) CycleInfo(ctx context.Context) (*CycleInfo, error) {
	var raw json.RawMessage
	if err := c.Call(ctx, &raw, "shardeum_getCycleInfo"); err != nil {
		return nil, err
	}
	rec, err := decodeCycle(raw)
	if err != nil {
		return nil, &ProtocolError{Method: "shardeum_getCycleInfo", Err: err}
	}
	return &CycleInfo{
		Counter:  rec.Counter,
		Start:    cycleStart(rec.Start),
		Duration: rec.Duration,
		Active:   rec.Active,
		Mode:     rec.Mode,
	}, nil
}

// decodeCycle accepts either a bare cycle record or one wrapped in a
// "cycleInfo" envelope, which may itself be a list.
func decodeCycle(raw json.RawMessage) (*cycleRecord, error) {
	var env struct {
		CycleInfo json.RawMessage `json:"cycleInfo"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.CycleInfo) > 0 {
		raw = env.CycleInfo
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var list []cycleRecord
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode cycle list: %w", err)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("empty cycle list")
		}
		return &list[len(list)-1], nil
	}
	var rec cycleRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode cycle: %w", err)
	}
	return &rec, nil
}

// cycleStart reads a start stamp that nodes report in seconds or milliseconds.
func cycleStart(v int64) time.Time {
	if v <= 0 {
		return time.Time{}
	}
	if v > 1e12 {
		return time.UnixMilli(v).UTC()
	}
	return time.Unix(v, 0).UTC()
}

// Health summarises network liveness.
type Health struct {
	Healthy     bool      `json:"healthy"`
	NodeCount   int       `json:"nodeCount"`
	ActiveNodes int       `json:"activeNodes"`
	LatestCycle uint64    `json:"latestCycle"`
	CycleStart  time.Time `json:"cycleStart"`
	CheckedAt   time.Time `json:"checkedAt"`
	Issues      []string  `json:"issues,omitempty"`
}

// Lookup failures are reported with fixed text; the cause is only logged.
const (
	issueNodeListUnavailable  = "node list unavailable"
	issueCycleInfoUnavailable = "cycle info unavailable"
)

// NetworkHealth is healthy iff the node list is non-empty, at least one node
// is active and the latest cycle started within the health window. Lookup
// failures become issues rather than errors.
func (c *Client) NetworkHealth(ctx context.Context) *Health {
	now := c.settings.now()
	h := &Health{CheckedAt: now}

	nodes, err := c.NodeList(ctx, 1, 0)
	if err != nil {
		c.settings.logger.Warn("health check: node list lookup failed", zap.Error(err))
		h.Issues = append(h.Issues, issueNodeListUnavailable)
	} else {
		h.NodeCount = nodes.TotalNodes
		for _, n := range nodes.Nodes {
			if n.Active() {
				h.ActiveNodes++
			}
		}
		if h.NodeCount == 0 {
			h.Issues = append(h.Issues, "no nodes reported")
		} else if h.ActiveNodes == 0 {
			h.Issues = append(h.Issues, "no active nodes")
		}
	}

	cycle, err := c.CycleInfo(ctx)
	fresh := false
	if err != nil {
		c.settings.logger.Warn("health check: cycle info lookup failed", zap.Error(err))
		h.Issues = append(h.Issues, issueCycleInfoUnavailable)
	} else {
		h.LatestCycle = cycle.Counter
		h.CycleStart = cycle.Start
		fresh = !cycle.Start.IsZero() && now.Sub(cycle.Start) <= c.settings.HealthWindow
		if !fresh {
			h.Issues = append(h.Issues, fmt.Sprintf("latest cycle older than %s", c.settings.HealthWindow))
		}
	}

	h.Healthy = h.NodeCount > 0 && h.ActiveNodes > 0 && fresh
	return h
}
