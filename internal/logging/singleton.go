package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
	mu       sync.RWMutex

	logConfig *Config
)

// InitLogger configures and initializes the singleton logger.
// It should be called once at startup, before any GetLogger call.
func InitLogger(config *Config) error {
	mu.Lock()
	logConfig = config
	mu.Unlock()

	var err error
	once.Do(func() {
		instance, err = NewLogger(config)
	})
	return err
}

// GetLogger returns the singleton logger instance.
// Falls back to a stderr-only logger when InitLogger was never called,
// so library code can always log.
func GetLogger() *Logger {
	once.Do(func() {
		mu.RLock()
		config := logConfig
		mu.RUnlock()

		if config == nil {
			config = &Config{
				File:       "./logs/formgate.log",
				MaxSize:    100,
				MaxBackups: 3,
				MaxAge:     7,
			}
		}

		var err error
		instance, err = NewLogger(config)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	return instance
}
