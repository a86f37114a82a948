package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/keykeeper/internal/netx"
)

var errUsage = errors.New("usage")

const helpText = `Available commands:
  generate <name...>          create a key; the secret is shown once
  list                        list your keys
  show <id>                   show one key
  revoke <id> [reason...]     revoke a key
  rotate <id> [name...]       replace a key with a fresh one
  use <id>                    record a use of a key
  audit <id>                  show the audit trail of a key
  export [file]               archive your audit log; download it to file when given
  help, exit`

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

func (a *App) execute(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(a.out, helpText)
		return nil
	case "generate", "gen":
		if len(args) == 0 {
			return usage("generate <name>")
		}
		return a.generate(ctx, strings.Join(args, " "))
	case "list", "l":
		return a.list(ctx)
	case "show":
		if len(args) != 1 {
			return usage("show <id>")
		}
		return a.show(ctx, args[0])
	case "revoke":
		if len(args) == 0 {
			return usage("revoke <id> [reason]")
		}
		return a.revoke(ctx, args[0], strings.Join(args[1:], " "))
	case "rotate":
		if len(args) == 0 {
			return usage("rotate <id> [name]")
		}
		return a.rotate(ctx, args[0], strings.Join(args[1:], " "))
	case "use":
		if len(args) != 1 {
			return usage("use <id>")
		}
		return a.use(ctx, args[0])
	case "audit":
		if len(args) != 1 {
			return usage("audit <id>")
		}
		return a.audit(ctx, args[0])
	case "export":
		if len(args) > 1 {
			return usage("export [file]")
		}
		return a.export(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *App) generate(ctx context.Context, name string) error {
	resp, err := a.keys.Generate(ctx, name)
	if err != nil {
		return err
	}
	a.printKey(resp.GetKey())
	a.printSecret(resp.GetSecret())
	return nil
}

func (a *App) list(ctx context.Context) error {
	keys, err := a.keys.List(ctx)
	if err != nil {
		return err
	}
	a.printKeys(keys)
	return nil
}

func (a *App) show(ctx context.Context, id string) error {
	k, err := a.keys.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printKey(k)
	return nil
}

func (a *App) revoke(ctx context.Context, id, reason string) error {
	k, err := a.keys.Revoke(ctx, id, reason)
	if err != nil {
		return err
	}
	a.printKey(k)
	return nil
}

func (a *App) rotate(ctx context.Context, id, name string) error {
	resp, err := a.keys.Rotate(ctx, id, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Revoked %s\n", resp.GetRevoked().GetId())
	a.printKey(resp.GetKey())
	a.printSecret(resp.GetSecret())
	return nil
}

func (a *App) use(ctx context.Context, id string) error {
	k, err := a.keys.RecordUse(ctx, id)
	if err != nil {
		return err
	}
	a.printKey(k)
	return nil
}

func (a *App) audit(ctx context.Context, id string) error {
	events, err := a.keys.Audit(ctx, id)
	if err != nil {
		return err
	}
	a.printEvents(events)
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	resp, err := a.keys.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported %d events to %s\n", resp.GetEvents(), resp.GetObjectKey())

	if len(args) == 0 {
		fmt.Fprintf(a.out, "Download (valid until %s):\n%s\n", formatTime(resp.GetExpiresAt()), resp.GetUrl())
		return nil
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	n, err := netx.DownloadFromS3PresignedURL(ctx, resp.GetUrl(), f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", n, args[0])
	return nil
}
