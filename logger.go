package scoped

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger routes the accessor's debug events to log and swaps Logger to
// the same destination, so watermill-backed providers follow along. Call it
// before the first Instance; the package does not guard concurrent
// replacement.
func SetLogger(log *zap.Logger) {
	if log != nil {
		logger = log
		Logger = ZapLogger(log)
	}
}

// Logger is the adapter handed to watermill-backed providers. SetLogger
// replaces it; assign directly to split provider logging from the accessor's.
var Logger watermill.LoggerAdapter = watermill.NewStdLogger(false, false)

type zapAdapter struct {
	log    *zap.SugaredLogger
	fields watermill.LogFields
}

// ZapLogger adapts a zap logger to watermill's LoggerAdapter.
func ZapLogger(log *zap.Logger) watermill.LoggerAdapter {
	return &zapAdapter{log: log.Sugar()}
}

func (ad *zapAdapter) kvs(fields watermill.LogFields) []interface{} {
	var (
		args []interface{}
		m    = make(map[string]interface{})
	)

	if len(ad.fields) > 0 {
		copier.Copy(&m, ad.fields)
	}

	mergo.Map(&m, fields, mergo.WithOverride)

	for key, field := range m {
		args = append(args, key, field)
	}

	return args
}

func (ad *zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	ad.log.Errorw(fmt.Sprintf(msg, err), ad.kvs(fields)...)
}

func (ad *zapAdapter) Info(msg string, fields watermill.LogFields) {
	ad.log.Infow(msg, ad.kvs(fields)...)
}

func (ad *zapAdapter) Debug(msg string, fields watermill.LogFields) {
	ad.log.Debugw(msg, ad.kvs(fields)...)
}

func (ad *zapAdapter) Trace(msg string, fields watermill.LogFields) {
	ad.log.Debugw(msg, ad.kvs(fields)...)
}

func (ad *zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapAdapter{
		log:    ad.log,
		fields: fields,
	}
}
