// Package cli implements the keykeeper command-line client: one-shot
// commands and an interactive shell over the same command set.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/keykeeper/internal/client/client"
	"github.com/dmitrijs2005/keykeeper/internal/client/config"
	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
)

// KeyClient is the remote API the commands run against.
type KeyClient interface {
	Generate(ctx context.Context, displayName string) (*pb.GenerateKeyResponse, error)
	List(ctx context.Context) ([]*pb.Key, error)
	Get(ctx context.Context, keyID string) (*pb.Key, error)
	Revoke(ctx context.Context, keyID, reason string) (*pb.Key, error)
	Rotate(ctx context.Context, keyID, displayName string) (*pb.RotateKeyResponse, error)
	RecordUse(ctx context.Context, keyID string) (*pb.Key, error)
	Audit(ctx context.Context, keyID string) ([]*pb.AuditEvent, error)
	Export(ctx context.Context) (*pb.ExportAuditResponse, error)
	SetAccessToken(token string)
	Close() error
}

type App struct {
	config *config.Config
	keys   KeyClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.AccessToken, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, keys: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run executes args as a single command, or starts the shell when args is
// empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.keys.Close()

	if err := a.ensureToken(); err != nil {
		return err
	}

	if len(args) == 0 {
		a.Root(ctx)
		return nil
	}
	return a.execute(ctx, args[0], args[1:])
}

func (a *App) ensureToken() error {
	if a.config.AccessToken != "" {
		return nil
	}
	token, err := GetAccessToken(a.out)
	if err != nil {
		return err
	}
	a.config.AccessToken = token
	a.keys.SetAccessToken(token)
	return nil
}
