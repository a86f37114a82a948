package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/client/config"
	pb "github.com/dmitrijs2005/keykeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeKeys struct {
	calls     []string
	exportURL string
	token     string
	closed    bool
	err       error
}

var created = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fakeKey() *pb.Key {
	return &pb.Key{Id: "k1", DisplayName: "ci", Prefix: "kk_abcdefgh", Status: "ACTIVE", CreatedAt: timestamppb.New(created)}
}

func (f *fakeKeys) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeKeys) Generate(_ context.Context, name string) (*pb.GenerateKeyResponse, error) {
	if err := f.record("generate " + name); err != nil {
		return nil, err
	}
	return &pb.GenerateKeyResponse{Key: fakeKey(), Secret: "kk_topsecret"}, nil
}

func (f *fakeKeys) List(context.Context) ([]*pb.Key, error) {
	if err := f.record("list"); err != nil {
		return nil, err
	}
	return []*pb.Key{fakeKey()}, nil
}

func (f *fakeKeys) Get(_ context.Context, id string) (*pb.Key, error) {
	if err := f.record("get " + id); err != nil {
		return nil, err
	}
	return fakeKey(), nil
}

func (f *fakeKeys) Revoke(_ context.Context, id, reason string) (*pb.Key, error) {
	if err := f.record("revoke " + id + " " + reason); err != nil {
		return nil, err
	}
	k := fakeKey()
	k.Status = "REVOKED"
	k.RevokedAt = timestamppb.New(created.Add(time.Hour))
	return k, nil
}

func (f *fakeKeys) Rotate(_ context.Context, id, name string) (*pb.RotateKeyResponse, error) {
	if err := f.record("rotate " + id + " " + name); err != nil {
		return nil, err
	}
	return &pb.RotateKeyResponse{Key: fakeKey(), Secret: "kk_fresh", Revoked: &pb.Key{Id: id}}, nil
}

func (f *fakeKeys) RecordUse(_ context.Context, id string) (*pb.Key, error) {
	if err := f.record("use " + id); err != nil {
		return nil, err
	}
	return fakeKey(), nil
}

func (f *fakeKeys) Audit(_ context.Context, id string) ([]*pb.AuditEvent, error) {
	if err := f.record("audit " + id); err != nil {
		return nil, err
	}
	return []*pb.AuditEvent{
		{Id: "e1", KeyId: id, Action: "GENERATED", OccurredAt: timestamppb.New(created), Metadata: map[string]string{"prefix": "kk_abcdefgh"}},
		{Id: "e2", KeyId: id, Action: "USED", OccurredAt: timestamppb.New(created), SourceAddress: "192.0.2.1:1"},
	}, nil
}

func (f *fakeKeys) Export(context.Context) (*pb.ExportAuditResponse, error) {
	if err := f.record("export"); err != nil {
		return nil, err
	}
	url := f.exportURL
	if url == "" {
		url = "http://s3/a"
	}
	return &pb.ExportAuditResponse{ObjectKey: "audit/alice/a.jsonl", Url: url, Events: 2, ExpiresAt: timestamppb.New(created)}, nil
}

func (f *fakeKeys) SetAccessToken(token string) { f.token = token }
func (f *fakeKeys) Close() error {
	f.closed = true
	return nil
}

func newTestApp(keys *fakeKeys, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{AccessToken: "tok"},
		keys:   keys,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}, out
}

func TestRun_OneShotCommands(t *testing.T) {
	tests := []struct {
		args     []string
		wantCall string
		wantOut  []string
	}{
		{[]string{"generate", "ci", "bot"}, "generate ci bot", []string{"kk_topsecret", "cannot be shown again"}},
		{[]string{"list"}, "list", []string{"ID", "kk_abcdefgh", "ACTIVE"}},
		{[]string{"show", "k1"}, "get k1", []string{"Prefix:", "kk_abcdefgh"}},
		{[]string{"revoke", "k1", "leaked", "in", "logs"}, "revoke k1 leaked in logs", []string{"REVOKED", "Revoked:"}},
		{[]string{"rotate", "k1"}, "rotate k1 ", []string{"Revoked k1", "kk_fresh"}},
		{[]string{"use", "k1"}, "use k1", []string{"ci"}},
		{[]string{"audit", "k1"}, "audit k1", []string{"GENERATED", "prefix=kk_abcdefgh", "192.0.2.1:1"}},
		{[]string{"export"}, "export", []string{"Exported 2 events", "http://s3/a"}},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			keys := &fakeKeys{}
			app, out := newTestApp(keys, "")

			require.NoError(t, app.Run(context.Background(), tt.args))
			assert.Equal(t, []string{tt.wantCall}, keys.calls)
			for _, w := range tt.wantOut {
				assert.Contains(t, out.String(), w)
			}
			assert.True(t, keys.closed)
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	for _, args := range [][]string{{"generate"}, {"show"}, {"revoke"}, {"rotate"}, {"use", "a", "b"}, {"audit"}} {
		keys := &fakeKeys{}
		app, _ := newTestApp(keys, "")
		err := app.Run(context.Background(), args)
		assert.ErrorIs(t, err, errUsage, "%v", args)
		assert.Empty(t, keys.calls)
	}

	app, _ := newTestApp(&fakeKeys{}, "")
	assert.EqualError(t, app.Run(context.Background(), []string{"frobnicate"}), "unknown command: frobnicate")
}

func TestRun_PropagatesClientError(t *testing.T) {
	boom := errors.New("active key quota exceeded")
	app, _ := newTestApp(&fakeKeys{err: boom}, "")
	assert.ErrorIs(t, app.Run(context.Background(), []string{"generate", "x"}), boom)
}

func TestRoot_Shell(t *testing.T) {
	keys := &fakeKeys{}
	app, out := newTestApp(keys, "help\n\nlist\nshow\nbogus\nexit\nlist\n")

	require.NoError(t, app.Run(context.Background(), nil))

	assert.Equal(t, []string{"list"}, keys.calls)
	s := out.String()
	assert.Contains(t, s, "Available commands")
	assert.Contains(t, s, "Error: usage: show <id>")
	assert.Contains(t, s, "Error: unknown command: bogus")
	assert.Contains(t, s, "Bye!")
}

func TestRoot_StopsAtEOF(t *testing.T) {
	keys := &fakeKeys{}
	app, _ := newTestApp(keys, "list")

	app.Root(context.Background())
	assert.Equal(t, []string{"list"}, keys.calls)
}

func TestRun_PromptsForToken(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return []byte(" typed-token \n"), nil }

	keys := &fakeKeys{}
	app, out := newTestApp(keys, "")
	app.config.AccessToken = ""

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.Equal(t, "typed-token", keys.token)
	assert.Equal(t, "typed-token", app.config.AccessToken)
	assert.Contains(t, out.String(), "Access token: ")
}

func TestRun_EmptyTokenFails(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return nil, nil }

	keys := &fakeKeys{}
	app, _ := newTestApp(keys, "")
	app.config.AccessToken = ""

	assert.ErrorIs(t, app.Run(context.Background(), []string{"list"}), errEmptyToken)
	assert.Empty(t, keys.calls)
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(&config.Config{ServerEndpointAddr: "127.0.0.1:1", RequestTimeout: time.Second, AccessToken: "t"})
	require.NoError(t, err)
	require.NoError(t, app.keys.Close())
}

func TestRun_ExportDownloadsToFile(t *testing.T) {
	body := "{\"action\":\"GENERATED\"}\n{\"action\":\"USED\"}\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	keys := &fakeKeys{exportURL: ts.URL + "/audit/alice/a.jsonl"}
	app, out := newTestApp(keys, "")
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	require.NoError(t, app.Run(context.Background(), []string{"export", path}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	assert.Contains(t, out.String(), "Saved")
	assert.NotContains(t, out.String(), ts.URL)
}
