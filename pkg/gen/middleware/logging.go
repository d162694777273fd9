package middleware

import (
	"context"
	"time"

	"blogsmith/pkg/gen/llm"
	"blogsmith/pkg/logx"
)

// Logging returns a middleware that logs each generation call with its
// provider, model, prompt size, and outcome. Prompt contents are never logged
// above debug level.
func Logging(provider string, logger *logx.Logger) llm.Middleware {
	return func(next llm.Client) llm.Client {
		return llm.WrapClient(
			func(ctx context.Context, req llm.Request) (llm.Response, error) {
				var promptChars int
				for i := range req.Messages {
					promptChars += len(req.Messages[i].Content)
				}
				logger.Debug("calling %s (model %s, %d messages, %d prompt chars)",
					provider, next.ModelName(), len(req.Messages), promptChars)

				start := time.Now()
				resp, err := next.Complete(ctx, req)
				if err != nil {
					logger.Error("%s call failed after %s: %v", provider, time.Since(start).Round(time.Millisecond), err)
					return resp, err
				}

				logger.Info("%s responded in %s (%d chars, stop=%s)",
					provider, time.Since(start).Round(time.Millisecond), len(resp.Content), resp.StopReason)
				return resp, nil
			},
			next.ModelName,
		)
	}
}
