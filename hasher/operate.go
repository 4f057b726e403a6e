package hasher

import (
	"context"
	"errors"

	"xdao.co/hashes/digest"
	"xdao.co/hashes/value"
)

const expectedInput = "string or binary"

// operate applies the hash action to v. A top-level list is processed row by
// row; each row is either hashed whole (no cell paths) or has every addressed
// leaf replaced.
func (h *Hasher[T, A]) operate(ctx context.Context, v value.Value, p plan) (value.Value, error) {
	rows, ok := v.AsList()
	if !ok {
		return h.operateRow(ctx, v, p)
	}
	out := make([]value.Value, len(rows))
	for i, row := range rows {
		if err := interrupted(ctx); err != nil {
			return value.Value{}, err
		}
		nv, err := h.operateRow(ctx, row, p)
		if err != nil {
			return value.Value{}, err
		}
		out[i] = nv
	}
	return value.List(out...), nil
}

func (h *Hasher[T, A]) operateRow(ctx context.Context, v value.Value, p plan) (value.Value, error) {
	if v.IsError() {
		return v, nil
	}
	if len(p.paths) == 0 {
		return h.action(v, p.mode, "")
	}

	// Update callbacks cannot fail, so whole-call failures are carried out
	// through this variable and checked after each path.
	var callErr error
	var at string
	leaf := func(old value.Value) value.Value {
		if callErr != nil {
			return old
		}
		if err := interrupted(ctx); err != nil {
			callErr = err
			return old
		}
		nv, err := h.action(old, p.mode, at)
		if err != nil {
			callErr = err
			return old
		}
		return nv
	}

	for _, path := range p.paths {
		at = path.String()
		nv, err := v.Update(path, leaf)
		if callErr != nil {
			return value.Value{}, callErr
		}
		if err != nil {
			return value.FromError(leafError(err, path)), nil
		}
		v = nv
	}
	return v, nil
}

// action hashes one leaf. Error values pass through untouched and other
// non-hashable values become an UnsupportedInput error value located at path.
func (h *Hasher[T, A]) action(v value.Value, mode Mode, path string) (value.Value, error) {
	var data []byte
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		data = []byte(s)
	case value.KindBinary:
		data, _ = v.AsBinary()
	case value.KindError:
		return v, nil
	default:
		e := value.Unsupported(expectedInput, v)
		e.Path = path
		return value.FromError(e), nil
	}
	return format(mode, digest.Sum[T, A](data), h.md.Multicodec)
}

func leafError(err error, path value.CellPath) *value.Error {
	var ve *value.Error
	if errors.As(err, &ve) {
		return ve
	}
	return &value.Error{Kind: value.CellPathNotFound, Path: path.String(), Message: err.Error()}
}
