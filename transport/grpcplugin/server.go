// Package grpcplugin serves the hash commands of a plugin.Plugin over gRPC
// and provides the matching client.
package grpcplugin

import (
	"context"
	"errors"
	"io"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/hashes/codec"
	"xdao.co/hashes/hasher"
	"xdao.co/hashes/plugin"
	"xdao.co/hashes/value"
)

// Server exposes a plugin.Plugin over the Plugin gRPC service.
type Server struct {
	UnimplementedPluginServer
	Plugin  *plugin.Plugin
	Metrics *Metrics
}

func (s *Server) Signature(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	_ = ctx
	if s == nil || s.Plugin == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing plugin")
	}
	l, err := signatureList(s.Plugin.Commands())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return l, nil
}

func (s *Server) Run(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	if s == nil || s.Plugin == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing plugin")
	}
	var req request
	if err := codec.Unmarshal(in.GetValue(), &req); err != nil {
		return nil, toStatus(hasher.Errorf(hasher.KindArguments, hasher.RuleUnsupportedPayload, "decoding request", err))
	}
	if req.Input == nil {
		return nil, toStatus(hasher.Errorf(hasher.KindArguments, hasher.RuleMissingInput, "request has no input", nil))
	}
	v, err := codec.FromWire(*req.Input)
	if err != nil {
		return nil, toStatus(hasher.Errorf(hasher.KindArguments, hasher.RuleUnsupportedPayload, "decoding input", err))
	}
	call := req.call()
	call.Input = hasher.ValueInput(v)
	return s.run(ctx, req.Command, call)
}

func (s *Server) RunStream(stream Plugin_RunStreamServer) error {
	if s == nil || s.Plugin == nil {
		return status.Error(codes.FailedPrecondition, "missing plugin")
	}
	first, err := stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return toStatus(hasher.Errorf(hasher.KindArguments, hasher.RuleMissingInput, "stream has no request header", nil))
		}
		return err
	}
	var req request
	if err := codec.Unmarshal(first.GetValue(), &req); err != nil {
		return toStatus(hasher.Errorf(hasher.KindArguments, hasher.RuleUnsupportedPayload, "decoding request header", err))
	}

	r := &streamReader{stream: stream}
	call := req.call()
	call.Input = hasher.StreamInput(r)
	out, err := s.run(stream.Context(), req.Command, call)
	s.Metrics.addStreamBytes(req.Command, r.n)
	if err != nil {
		return err
	}
	return stream.SendAndClose(out)
}

func (s *Server) run(ctx context.Context, command string, call hasher.Call) (*wrapperspb.BytesValue, error) {
	start := time.Now()
	v, err := s.Plugin.Run(ctx, command, call)
	s.Metrics.observe(command, outcome(v, err), time.Since(start))
	if err != nil {
		return nil, toStatus(err)
	}
	b, err := codec.MarshalValue(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bytes(b), nil
}

func outcome(v value.Value, err error) string {
	switch {
	case err != nil:
		var he *hasher.Error
		if errors.As(err, &he) {
			return string(he.Kind)
		}
		return string(hasher.KindInternal)
	case v.IsError():
		return "value_error"
	default:
		return "ok"
	}
}

// streamReader adapts the chunk messages of RunStream to an io.Reader.
type streamReader struct {
	stream Plugin_RunStreamServer
	buf    []byte
	n      int
}

func (r *streamReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		m, err := r.stream.Recv()
		if err != nil {
			return 0, err
		}
		r.buf = m.GetValue()
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	r.n += n
	return n, nil
}

// UnaryLogger logs every unary call with its status code and latency.
func UnaryLogger(log *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(log, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamLogger is UnaryLogger for streaming calls.
func StreamLogger(log *zap.SugaredLogger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(log, info.FullMethod, start, err)
		return err
	}
}

func logCall(log *zap.SugaredLogger, method string, start time.Time, err error) {
	code := status.Code(err)
	kv := []interface{}{"method", method, "code", code.String(), "elapsed", time.Since(start)}
	if err != nil {
		log.Warnw("rpc failed", append(kv, "error", err)...)
		return
	}
	log.Debugw("rpc", kv...)
}

// UnaryRecover turns a handler panic into an Internal status so one call
// cannot take the daemon down.
func UnaryRecover(log *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer recoverCall(log, info.FullMethod, &err)
		return handler(ctx, req)
	}
}

// StreamRecover is UnaryRecover for streaming calls.
func StreamRecover(log *zap.SugaredLogger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer recoverCall(log, info.FullMethod, &err)
		return handler(srv, ss)
	}
}

func recoverCall(log *zap.SugaredLogger, method string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("rpc panicked", "method", method, "panic", r, "stack", string(debug.Stack()))
	*err = status.Error(codes.Internal, "internal error")
}
