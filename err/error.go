package err

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Error interface {
	Error() string
	Unwrap() error
	Cause() error
	Present() bool
	Warn()
	Fatal()
}

type err struct {
	e error
}

var none = &err{}

// New attaches a stack trace to e. A nil e yields Nil().
func New(e error) Error {
	if e == nil {
		return Nil()
	}
	if er, ok := e.(*err); ok {
		return er
	}
	return &err{e: errors.WithStack(e)}
}

func Wrap(e error, msg string) Error {
	if e == nil {
		return Nil()
	}
	if er, ok := e.(*err); ok {
		return &err{e: errors.WithMessage(er.e, msg)}
	}
	return &err{e: errors.Wrap(e, msg)}
}

func Errorf(format string, args ...interface{}) Error {
	return &err{e: errors.Errorf(format, args...)}
}

func Nil() Error {
	return none
}

func (e *err) Error() string {
	if !e.Present() {
		return ""
	}
	return e.e.Error()
}

func (e *err) Unwrap() error {
	return e.e
}

func (e *err) Cause() error {
	return errors.Cause(e.e)
}

func (e *err) Present() bool {
	return e.e != nil
}

func (e *err) Warn() {
	if e.Present() {
		e.event(log.Warn()).Msg(e.Error())
	}
}

func (e *err) Fatal() {
	if e.Present() {
		e.event(log.Fatal()).Msg(e.Error())
	}
}

func (e *err) event(ev *zerolog.Event) *zerolog.Event {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		ev = ev.Str("stack", fmt.Sprintf("%+v", e.e))
	}
	return ev
}
