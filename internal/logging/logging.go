package logging

import "go.uber.org/zap"

// New builds the process logger. Release mode gets production settings,
// anything else gets the development console encoder.
func New(ginMode string) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if ginMode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
