package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// GetNodes lists nodes matching filter. Timestamp fields of each record are
// parsed; unparseable values become nil.
func GetNodes(ctx context.Context, rc *resty.Client, logger zerolog.Logger, filter types.NodeFilter) (*types.NodeList, error) {
	const op = "get nodes"
	q := url.Values{}
	setInt64(q, "id", filter.ID)
	setString(q, "renter", filter.Renter)
	setString(q, "status", filter.Status)
	setString(q, "any_desk_address", filter.AnyDeskAddress)
	setString(q, "software", filter.Software)

	resp, err := do(ctx, rc, logger, op, http.MethodGet, "/nodes", q, nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeRecords(op, resp)
	if err != nil {
		return nil, err
	}

	parse, skip := timestampParser(logger, op), skipHandler(logger, op)
	nodes := make([]types.Node, 0, len(recs))
	for _, raw := range recs {
		n, err := types.NodeFromRecord(raw, parse, skip)
		if err != nil {
			skipRecord(logger, op, raw, err)
			continue
		}
		nodes = append(nodes, n)
	}
	return &types.NodeList{Response: *resp, Nodes: nodes}, nil
}

// UpdateNode sends node to PATCH /nodes. Timestamps go out as UTC text
// ending in "Z"; nil timestamps are sent as null.
func UpdateNode(ctx context.Context, rc *resty.Client, logger zerolog.Logger, node types.Node) (*types.Response, error) {
	return do(ctx, rc, logger, "update node", http.MethodPatch, "/nodes", nil, node)
}
