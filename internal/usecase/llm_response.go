package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vaif_quotes/internal/infrastructure/metrics"

	"github.com/xeipuuv/gojsonschema"
)

var (
	// ErrUpstreamUnavailable wraps failed or timed-out model calls. It never
	// reaches HTTP callers; it is only reported as the reason of a degraded outcome.
	ErrUpstreamUnavailable = errors.New("language model unavailable")
	// ErrMalformedUpstreamResponse wraps model output that does not match the expected JSON.
	ErrMalformedUpstreamResponse = errors.New("malformed language model response")
	// ErrUpstreamTimeout is the ErrUpstreamUnavailable case where the call deadline expired.
	ErrUpstreamTimeout = fmt.Errorf("%w: timed out", ErrUpstreamUnavailable)

	errLanguageModelNotConfigured = errors.New("language model not configured")
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded json schema: %v", err))
	}
	return s
}

// extractJSON strips markdown fences and any prose around the outermost object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// validateJSON checks doc against schema and returns the cleaned document.
func validateJSON(schema *gojsonschema.Schema, raw string) (string, error) {
	doc := extractJSON(raw)
	if doc == "" {
		return "", fmt.Errorf("%w: empty response", ErrMalformedUpstreamResponse)
	}
	res, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return "", fmt.Errorf("%w: %s", ErrMalformedUpstreamResponse, strings.Join(msgs, "; "))
	}
	return doc, nil
}

// upstreamError classifies a failed completion call.
func upstreamError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}

// reasonLabel maps a degradation reason to a metrics label.
func reasonLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ReasonNone
	case errors.Is(err, errLanguageModelNotConfigured):
		return metrics.ReasonDisabled
	case errors.Is(err, ErrMalformedUpstreamResponse):
		return metrics.ReasonMalformed
	case errors.Is(err, ErrUpstreamTimeout):
		return metrics.ReasonTimeout
	default:
		return metrics.ReasonUnavailable
	}
}
