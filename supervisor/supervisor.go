// Package supervisor terminates the process on faults nothing else handles: panics
// escaping request handlers or main, and panics or errors escaping background tasks.
// Termination is immediate; in-flight requests are not drained.
package supervisor

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExitCode is the process exit code used for every fatal fault
const ExitCode = 1

// Supervisor is the top-level catch boundary of the process
type Supervisor struct {
	logger *zap.Logger
	exit   func(code int)
	tasks  sync.WaitGroup
}

// NewSupervisor creates a Supervisor that exits the process on fatal faults
func NewSupervisor(logger *zap.Logger) *Supervisor {
	return NewSupervisorWithExit(logger, os.Exit)
}

// NewSupervisorWithExit creates a Supervisor that calls exit instead of os.Exit
func NewSupervisorWithExit(logger *zap.Logger, exit func(code int)) *Supervisor {
	return &Supervisor{
		logger: logger,
		exit:   exit,
	}
}

// Fatal logs fault and exits with ExitCode
func (s *Supervisor) Fatal(msg string, fault interface{}, fields ...zap.Field) {
	fields = append(fields, faultField(fault), zap.Stack("stacktrace"))
	s.logger.Error(msg, fields...)
	_ = s.logger.Sync()
	s.exit(ExitCode)
}

// Recover must be deferred directly, e.g. at the top of main
func (s *Supervisor) Recover() {
	if fault := recover(); fault != nil {
		s.Fatal("uncaught exception", fault)
	}
}

// Middleware turns a panic in any later handler into a fatal fault
func (s *Supervisor) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			fault := recover()
			if fault == nil {
				return
			}
			// net/http uses ErrAbortHandler to abort a response without logging
			if fault == http.ErrAbortHandler {
				panic(fault)
			}
			s.Fatal("uncaught exception", fault,
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatus(http.StatusInternalServerError)
		}()
		ctx.Next()
	}
}

// Go runs task on a new goroutine. A panic in task or an error returned by it is an
// unhandled asynchronous fault.
func (s *Supervisor) Go(name string, task func() error) {
	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()
		defer func() {
			if fault := recover(); fault != nil {
				s.Fatal("unhandled rejection", fault, zap.String("task", name))
			}
		}()

		if err := task(); err != nil {
			s.Fatal("unhandled rejection", err, zap.String("task", name))
		}
	}()
}

// Wait blocks until every task started with Go has returned
func (s *Supervisor) Wait() {
	s.tasks.Wait()
}

func faultField(fault interface{}) zap.Field {
	if err, ok := fault.(error); ok {
		return zap.Error(err)
	}
	return zap.Any("error", fault)
}
