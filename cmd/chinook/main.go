package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/deppfellow/chinook/internal/sqlerr"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	stop()

	if err != nil {
		if a.log != nil {
			logFailure(a.log, err)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// logFailure logs err with its application and database error codes.
func logFailure(log *zerolog.Logger, err error) {
	event := log.Error().Err(err)

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		event = event.Str("kind", string(appErr.Kind)).Str("code", appErr.Code)
	}
	if code := sqlerr.ErrCode(err); code != sqlerr.Other {
		event = event.Str("sql_code", string(code))
	}

	event.Msg("command failed")
}
