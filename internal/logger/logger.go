package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init builds the global zap logger. Production gets JSON output, every other
// environment the human readable development encoder.
func Init(environment, lvl string) error {
	var conf zap.Config
	if environment == "production" {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}

	if err := SetLevel(lvl); err != nil {
		return err
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}
	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the running logger. An empty string is a no-op.
func SetLevel(lvl string) error {
	if lvl == "" {
		return nil
	}
	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return fmt.Errorf("invalid log level %q -> %w", lvl, err)
	}

	return nil
}

func Level() string {
	return level.String()
}
