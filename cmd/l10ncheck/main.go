// Command l10ncheck verifies localization catalogs against key types declared
// in YAML manifests.
//
//	l10ncheck verify --manifest 'i18n/**/*.l10n.yaml' --dir ./i18n
//	l10ncheck verify app.Greetings --locale fr_CA --format json
//	l10ncheck watch --dir ./i18n --metrics-addr :9090
//	l10ncheck types --manifest i18n/app.l10n.yaml
//
// verify exits with status 1 when findings are reported and 2 when a key type
// cannot be verified at all.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFatal
}
