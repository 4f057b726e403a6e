package grpcplugin

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/hashes/hasher"
)

// toStatus maps a whole-call error to a gRPC status. The rule id is carried as
// a message prefix so clients can restore it.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var he *hasher.Error
	if !errors.As(err, &he) {
		return status.Error(codes.Internal, err.Error())
	}
	code := codes.Internal
	switch he.Kind {
	case hasher.KindArguments:
		code = codes.InvalidArgument
		if he.RuleID == hasher.RuleUnknownCommand {
			code = codes.NotFound
		}
	case hasher.KindInput:
		code = codes.FailedPrecondition
	case hasher.KindInterrupted:
		code = codes.Canceled
	}
	msg := he.Error()
	if he.RuleID != "" {
		msg = he.RuleID + ": " + msg
	}
	return status.Error(code, msg)
}

// mapRPC turns a gRPC error back into a *hasher.Error.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return hasher.Errorf(hasher.KindInternal, "", "remote call failed", err)
	}

	kind := hasher.KindInternal
	switch st.Code() {
	case codes.InvalidArgument, codes.NotFound:
		kind = hasher.KindArguments
	case codes.FailedPrecondition:
		kind = hasher.KindInput
	case codes.Canceled, codes.DeadlineExceeded:
		kind = hasher.KindInterrupted
	}

	msg := st.Message()
	rule := ""
	if i := strings.Index(msg, ": "); i > 0 && strings.HasPrefix(msg, "HASH-") {
		rule, msg = msg[:i], msg[i+2:]
	}
	return hasher.Errorf(kind, rule, msg, nil)
}
