package integrations

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/configs"
	"droscher.com/WhiskyShelf/pkg/integrations/whiskybase"
	"droscher.com/WhiskyShelf/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

// Integration looks brands up in an external catalogue.
type Integration interface {
	FindBrand(name string) ([]model.Brand, error)
}

func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) (Integration, error) {
	if name == whiskybase.IntegrationName {
		integration, err := whiskybase.NewWhiskybaseIntegration(conf.WhiskybaseURL, logger)
		if err != nil {
			return nil, err
		}

		return integration, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownIntegration, name)
}
