package whiskybase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const IntegrationName = "whiskybase"

var ErrInvalidURL = errors.New("invalid catalogue url")

type WhiskybaseIntegration struct {
	logger  *zap.Logger
	baseURL *url.URL
}

func NewWhiskybaseIntegration(baseURL string, logger *zap.Logger) (*WhiskybaseIntegration, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, baseURL)
	}

	return &WhiskybaseIntegration{logger: logger, baseURL: parsed}, nil
}

func (w *WhiskybaseIntegration) resolve(reference string) string {
	target, err := w.baseURL.Parse(reference)
	if err != nil {
		return w.baseURL.String() + "/" + strings.TrimPrefix(reference, "/")
	}

	return target.String()
}
