package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// SaveHashMapping stores a question/answer pair; the server replies with its
// hash.
func SaveHashMapping(ctx context.Context, rc *resty.Client, logger zerolog.Logger, question, answer string) (*types.Response, error) {
	body := types.SaveHashRequest{Question: question, Answer: answer}
	return do(ctx, rc, logger, "save hash mapping", http.MethodPost, "/quiz/save-hash", nil, body)
}

// GetQuestionAnswerByHash looks a question/answer pair up by its hash.
func GetQuestionAnswerByHash(ctx context.Context, rc *resty.Client, logger zerolog.Logger, answerHash string) (*types.Response, error) {
	q := url.Values{}
	q.Set("hash", answerHash)
	return do(ctx, rc, logger, "get question answer by hash", http.MethodGet, "/quiz/get-question-answer", q, nil)
}

// SaveUserAnswer records the answer a Telegram user gave to a question.
func SaveUserAnswer(ctx context.Context, rc *resty.Client, logger zerolog.Logger, telegramID int64, question, answer string) (*types.Response, error) {
	body := types.SaveAnswerRequest{TelegramID: telegramID, Question: question, Answer: answer}
	return do(ctx, rc, logger, "save user answer", http.MethodPost, "/quiz/save-answer", nil, body)
}
