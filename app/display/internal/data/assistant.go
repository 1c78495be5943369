package data

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/culture_radar/app/display/internal/repo"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/chat"
)

type assistantRepo struct {
	data *Data
	log  *log.Helper
}

func NewAssistantRepo(data *Data, logger log.Logger) repo.AssistantRepo {
	return &assistantRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *assistantRepo) Ask(ctx context.Context, prompt string, opts chat.AskOptions) (*chat.Answer, error) {
	if r.data.assistant == nil {
		return nil, errors.ServiceUnavailable("ASSISTANT_UNAVAILABLE", "llm api key is not configured")
	}

	ans, err := r.data.assistant.Ask(ctx, prompt, opts)
	switch {
	case err == nil:
		return ans, nil
	case stderrors.Is(err, chat.ErrEmptyPrompt):
		return nil, errors.BadRequest("EMPTY_PROMPT", "prompt is empty")
	default:
		r.log.Errorf("assistant failed: %v", err)
		return nil, errors.ServiceUnavailable("ASSISTANT_UNAVAILABLE", err.Error())
	}
}
