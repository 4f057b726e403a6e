package grpcplugin

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/hashes/codec"
	"xdao.co/hashes/hasher"
	"xdao.co/hashes/internal/logger"
	"xdao.co/hashes/plugin"
	"xdao.co/hashes/value"
)

const (
	alphabet     = "abcdefghijklmnopqrstuvwxyz"
	alphabetSHA1 = "32d10c7b8cf96570ca04ce37f2a19d84240d3a89"
	alphabetSHA2 = "71c480df93d6ae2f1efad1447c66c9525e316218cf51fc8d9ed832f2daf18b73"
)

func startServer(t *testing.T, m *Metrics) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterPluginServer(srv, &Server{Plugin: plugin.MustNew(), Metrics: m})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	client := NewClient(cc)
	client.Timeout = 5 * time.Second
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRunValue(t *testing.T) {
	client := startServer(t, nil)

	in := value.List(
		value.Rec(value.Field{Name: "name", Value: value.String(alphabet)}),
		value.Rec(value.Field{Name: "name", Value: value.Int(7)}),
	)
	got, err := client.Run(context.Background(), "hash sha256", hasher.Call{
		CellPaths: []string{"name"},
		Input:     hasher.ValueInput(in),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows, ok := got.AsList()
	if !ok || len(rows) != 2 {
		t.Fatalf("expected two rows, got %s", got)
	}
	rec, _ := rows[0].AsRecord()
	name, _ := rec.Get("name")
	if s, _ := name.AsString(); s != alphabetSHA2 {
		t.Fatalf("row 0: got %s", name)
	}
	rec, _ = rows[1].AsRecord()
	name, _ = rec.Get("name")
	e, ok := name.AsError()
	if !ok || e.Kind != value.UnsupportedInput {
		t.Fatalf("row 1: expected embedded unsupported-input error, got %s", name)
	}
}

func TestRunStream(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	client := startServer(t, m)

	for _, chunk := range []int{1, 5, 26, 0} {
		got, err := client.Run(context.Background(), "sha1", hasher.Call{
			ChunkSize: chunk,
			Input:     hasher.StreamInput(strings.NewReader(alphabet)),
		})
		if err != nil {
			t.Fatalf("chunk %d: Run: %v", chunk, err)
		}
		if s, _ := got.AsString(); s != alphabetSHA1 {
			t.Fatalf("chunk %d: got %s", chunk, got)
		}
	}
	if n := testutil.ToFloat64(m.streamBytes.WithLabelValues("sha1")); n != 4*26 {
		t.Fatalf("stream bytes: got %v", n)
	}
	if n := testutil.ToFloat64(m.calls.WithLabelValues("sha1", "ok")); n != 4 {
		t.Fatalf("ok calls: got %v", n)
	}
}

func TestRunStreamBinaryMode(t *testing.T) {
	client := startServer(t, nil)

	got, err := client.Run(context.Background(), "hash sha256", hasher.Call{
		Binary: true,
		Input:  hasher.StreamInput(bytes.NewReader([]byte(alphabet))),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, ok := got.AsBinary()
	if !ok || len(b) != 32 || b[0] != 0x71 {
		t.Fatalf("got %s", got)
	}
}

func TestRunStreamEmpty(t *testing.T) {
	client := startServer(t, nil)

	got, err := client.Run(context.Background(), "sha256", hasher.Call{
		Input: hasher.StreamInput(bytes.NewReader(nil)),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s, _ := got.AsString(); s != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("got %s", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestRunStreamReadError(t *testing.T) {
	client := startServer(t, nil)

	_, err := client.Run(context.Background(), "sha256", hasher.Call{
		Input: hasher.StreamInput(failingReader{}),
	})
	if !hasher.IsKind(err, hasher.KindInput) || hasher.RuleID(err) != hasher.RuleStreamRead {
		t.Fatalf("expected stream read error, got %v", err)
	}
}

func TestRemoteErrorsKeepRule(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	client := startServer(t, m)

	_, err := client.Run(context.Background(), "hash sha256", hasher.Call{
		Binary: true,
		CID:    true,
		Input:  hasher.ValueInput(value.String(alphabet)),
	})
	if !hasher.IsKind(err, hasher.KindArguments) || hasher.RuleID(err) != hasher.RuleConflictingModes {
		t.Fatalf("expected conflicting modes, got %v", err)
	}

	_, err = client.Run(context.Background(), "hash crc32-ieee", hasher.Call{
		Multihash: true,
		Input:     hasher.StreamInput(strings.NewReader(alphabet)),
	})
	if hasher.RuleID(err) != hasher.RuleNoMulticodec {
		t.Fatalf("expected no multicodec, got %v", err)
	}

	_, err = client.Run(context.Background(), "hash nope", hasher.Call{
		Input: hasher.ValueInput(value.String(alphabet)),
	})
	if !hasher.IsKind(err, hasher.KindArguments) || hasher.RuleID(err) != hasher.RuleUnknownCommand {
		t.Fatalf("expected unknown command, got %v", err)
	}

	if n := testutil.ToFloat64(m.calls.WithLabelValues("hash sha256", string(hasher.KindArguments))); n != 1 {
		t.Fatalf("argument failures: got %v", n)
	}
}

func TestCommands(t *testing.T) {
	client := startServer(t, nil)

	infos, err := client.Commands(context.Background())
	if err != nil {
		t.Fatalf("Commands: %v", err)
	}
	local := plugin.MustNew().Commands()
	if len(infos) != len(local) {
		t.Fatalf("expected %d commands, got %d", len(local), len(infos))
	}
	for i, info := range infos {
		want := local[i]
		if info.Signature.Name != want.Name() {
			t.Fatalf("command %d: got %q want %q", i, info.Signature.Name, want.Name())
		}
		if info.Signature.Category != "hash" {
			t.Fatalf("%s: category %q", info.Signature.Name, info.Signature.Category)
		}
		if len(info.Signature.Switches) != len(want.Signature().Switches) {
			t.Fatalf("%s: switches differ", info.Signature.Name)
		}
		if len(info.Examples) != len(want.Examples()) {
			t.Fatalf("%s: examples differ", info.Signature.Name)
		}
		if info.Examples[0].Result != want.Metadata().Hex {
			t.Fatalf("%s: first example result %q", info.Signature.Name, info.Examples[0].Result)
		}
	}
}

func TestServerWithoutPlugin(t *testing.T) {
	var s Server
	_, err := s.Signature(context.Background(), nil)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	orig := hasher.Errorf(hasher.KindInterrupted, hasher.RuleInterrupted, "hash interrupted", context.Canceled)
	st := toStatus(orig)
	if status.Code(st) != codes.Canceled {
		t.Fatalf("code: %v", status.Code(st))
	}
	back := mapRPC(st)
	if !hasher.IsKind(back, hasher.KindInterrupted) || hasher.RuleID(back) != hasher.RuleInterrupted {
		t.Fatalf("round trip: %v", back)
	}
	if !strings.Contains(back.Error(), "hash interrupted") {
		t.Fatalf("message lost: %v", back)
	}
}

func TestHTTPHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.observe("hash sha256", "ok", time.Millisecond)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), `hashes_calls_total{command="hash sha256",outcome="ok"} 1`) {
		t.Fatalf("metrics body missing counter:\n%s", body)
	}
}

func TestOversizedChunkSizeRejected(t *testing.T) {
	client := startServer(t, nil)
	ctx := context.Background()

	// The daemon must reject the header itself, whatever the client library checks.
	header, err := codec.Marshal(request{Command: "sha256", ChunkSize: 1 << 62})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	stream, err := client.client.RunStream(ctx)
	if err != nil {
		t.Fatalf("RunStream: %v", err)
	}
	if err := stream.Send(wrapperspb.Bytes(header)); err != nil {
		t.Fatalf("Send header: %v", err)
	}
	_ = stream.Send(wrapperspb.Bytes([]byte(alphabet)))
	_, err = stream.CloseAndRecv()
	if status.Code(err) != codes.InvalidArgument || !strings.HasPrefix(status.Convert(err).Message(), hasher.RuleBadChunkSize+": ") {
		t.Fatalf("expected %s InvalidArgument, got %v", hasher.RuleBadChunkSize, err)
	}

	// The server is still serving.
	got, err := client.Run(ctx, "sha256", hasher.Call{Input: hasher.StreamInput(strings.NewReader(alphabet))})
	if err != nil {
		t.Fatalf("Run after rejection: %v", err)
	}
	if s, _ := got.AsString(); s != alphabetSHA2 {
		t.Fatalf("got %s", got)
	}

	_, err = client.Run(ctx, "sha256", hasher.Call{
		ChunkSize: hasher.MaxChunkSize + 1,
		Input:     hasher.StreamInput(strings.NewReader(alphabet)),
	})
	if hasher.RuleID(err) != hasher.RuleBadChunkSize {
		t.Fatalf("client accepted oversized chunk size: %v", err)
	}
}

func TestRecoverInterceptors(t *testing.T) {
	log := logger.Nop()
	unary := UnaryRecover(log)
	_, err := unary(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Run"},
		func(context.Context, interface{}) (interface{}, error) { panic("boom") })
	if status.Code(err) != codes.Internal {
		t.Fatalf("unary: expected Internal, got %v", err)
	}

	stream := StreamRecover(log)
	err = stream(nil, nil, &grpc.StreamServerInfo{FullMethod: "/x/RunStream"},
		func(interface{}, grpc.ServerStream) error { panic("boom") })
	if status.Code(err) != codes.Internal {
		t.Fatalf("stream: expected Internal, got %v", err)
	}

	if _, err := unary(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Run"},
		func(context.Context, interface{}) (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("unary without panic: %v", err)
	}
}
