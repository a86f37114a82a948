package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Root runs the interactive shell until exit, EOF or ctx is done.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to keykeeper CLI (type 'help' for commands)")

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(a.out, "kk> ")

		line, err := a.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(a.out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]
		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		if err := a.execute(ctx, cmd, args); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
}
