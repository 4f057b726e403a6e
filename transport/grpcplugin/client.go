package grpcplugin

import (
	"context"
	"errors"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/hashes/codec"
	"xdao.co/hashes/hasher"
	"xdao.co/hashes/internal/pool"
	"xdao.co/hashes/value"
)

// Client runs hash commands on a remote plugin daemon.
type Client struct {
	cc     *grpc.ClientConn
	client PluginClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an existing connection. Close closes cc.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewPluginClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Commands lists the commands the daemon serves.
func (c *Client) Commands(ctx context.Context) ([]CommandInfo, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	l, err := c.client.Signature(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapRPC(err)
	}
	return commandsFromList(l)
}

// Run executes command remotely. Stream input is sent in chunks of
// call.ChunkSize as it is read; value input is sent in one message.
func (c *Client) Run(ctx context.Context, command string, call hasher.Call) (value.Value, error) {
	if err := hasher.CheckChunkSize(call.ChunkSize); err != nil {
		return value.Value{}, err
	}
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	header, err := codec.Marshal(newRequest(command, call))
	if err != nil {
		return value.Value{}, hasher.Errorf(hasher.KindInternal, "", "encoding request", err)
	}

	var reply *wrapperspb.BytesValue
	if call.Input.IsStream() {
		reply, err = c.runStream(ctx, header, call)
	} else {
		reply, err = c.client.Run(ctx, wrapperspb.Bytes(header))
		err = mapRPC(err)
	}
	if err != nil {
		return value.Value{}, err
	}
	v, err := codec.UnmarshalValue(reply.GetValue())
	if err != nil {
		return value.Value{}, hasher.Errorf(hasher.KindInternal, "", "decoding reply", err)
	}
	return v, nil
}

func (c *Client) runStream(ctx context.Context, header []byte, call hasher.Call) (*wrapperspb.BytesValue, error) {
	stream, err := c.client.RunStream(ctx)
	if err != nil {
		return nil, mapRPC(err)
	}
	if err := stream.Send(wrapperspb.Bytes(header)); err != nil && !errors.Is(err, io.EOF) {
		return nil, mapRPC(err)
	}

	size := call.ChunkSize
	if size <= 0 {
		size = hasher.DefaultChunkSize
	}
	bp := pool.For(size)
	buf := bp.Get()
	defer bp.Put(buf)

	for {
		buf.Reset()
		n, rerr := io.CopyN(buf, call.Input.Stream, int64(size))
		if n > 0 {
			// The server may reject the call before reading everything. Its
			// status is returned by CloseAndRecv; Send only reports io.EOF.
			if err := stream.Send(wrapperspb.Bytes(buf.Bytes())); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, mapRPC(err)
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			_ = stream.CloseSend()
			return nil, hasher.Errorf(hasher.KindInput, hasher.RuleStreamRead, "reading input stream", rerr)
		}
	}
	reply, err := stream.CloseAndRecv()
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply, nil
}

func (c *Client) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}
