package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// GetUsers lists users matching filter.
func GetUsers(ctx context.Context, rc *resty.Client, logger zerolog.Logger, filter types.UserFilter) (*types.UserList, error) {
	const op = "get users"
	q := url.Values{}
	setInt64(q, "id", filter.ID)
	setInt64(q, "telegram_id", filter.TelegramID)
	setString(q, "username", filter.Username)
	setInt(q, "limit", filter.Limit)

	resp, err := do(ctx, rc, logger, op, http.MethodGet, "/users", q, nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeRecords(op, resp)
	if err != nil {
		return nil, err
	}

	skip := skipHandler(logger, op)
	users := make([]types.User, 0, len(recs))
	for _, raw := range recs {
		u, err := types.UserFromRecord(raw, skip)
		if err != nil {
			skipRecord(logger, op, raw, err)
			continue
		}
		users = append(users, u)
	}
	return &types.UserList{Response: *resp, Users: users}, nil
}

// CreateOrUpdateUser upserts the user identified by input.TelegramID.
func CreateOrUpdateUser(ctx context.Context, rc *resty.Client, logger zerolog.Logger, input types.UserInput) (*types.Response, error) {
	return do(ctx, rc, logger, "create or update user", http.MethodPost, "/users", nil, input)
}
