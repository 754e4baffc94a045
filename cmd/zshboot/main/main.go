package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/zshboot/cmd/zshboot"
	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/style"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := zshboot.NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return errors.ExitCode(err)
	}
	return 0
}

// printError prints fatal errors in red and anything else, such as usage
// mistakes, as a warning
func printError(w io.Writer, err error) {
	theme := style.NewTheme(w, os.Getenv("NO_COLOR") != "")
	s := theme.Warning
	if errors.IsFatal(err) {
		s = theme.Error
	}
	fmt.Fprintln(w, s.Render(zshboot.MsgFatalPrefix+err.Error()))
}
