package logging

import (
	"os"
	"sync"

	"github.com/5l1v3r1/plaso/config"
	"github.com/sirupsen/logrus"
)

var (
	// Tags for the various log components.
	GenericComponent = "Plaso"
	CatalogComponent = "PlasoCatalog"
	ToolComponent    = "PlasoTool"

	mu       sync.Mutex
	managers = make(map[*string]*LogContext)
)

// LogContext wraps a logrus logger scoped to a single component.
type LogContext struct {
	*logrus.Logger

	component string
}

func (self *LogContext) Info(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Infof(format, v...)
	}
}

func (self *LogContext) Warn(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Warnf(format, v...)
	}
}

func (self *LogContext) Error(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Errorf(format, v...)
	}
}

func (self *LogContext) Debug(format string, v ...interface{}) {
	if self.Logger != nil {
		self.Logger.Debugf(format, v...)
	}
}

// GetLogger returns the logger for the component, creating it on
// first use. Loggers are shared - the same component always receives
// the same context.
func GetLogger(config_obj *config.Config, component *string) *LogContext {
	mu.Lock()
	defer mu.Unlock()

	ctx, pres := managers[component]
	if !pres {
		ctx = makeLogContext(config_obj, *component)
		managers[component] = ctx
	}
	return ctx
}

func makeLogContext(config_obj *config.Config, component string) *LogContext {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	}

	logger.Level = logrus.InfoLevel
	if config_obj != nil && config_obj.Verbose {
		logger.Level = logrus.DebugLevel
	}

	return &LogContext{
		Logger:    logger,
		component: component,
	}
}

// Reset is used by tests to drop cached loggers so verbosity changes
// take effect.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	managers = make(map[*string]*LogContext)
}
