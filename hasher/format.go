package hasher

import (
	"encoding/hex"

	"xdao.co/hashes/cidutil"
	"xdao.co/hashes/value"
)

func format(mode Mode, sum []byte, multicodec uint64) (value.Value, error) {
	switch mode {
	case ModeBinary:
		return value.Binary(sum), nil
	case ModeMultihash:
		s, err := cidutil.MultihashB58(sum, multicodec)
		if err != nil {
			return value.Value{}, wrapError(KindInternal, RuleFormat, "encoding multihash", err)
		}
		return value.String(s), nil
	case ModeCID:
		c, err := cidutil.CIDv1Raw(sum, multicodec)
		if err != nil {
			return value.Value{}, wrapError(KindInternal, RuleFormat, "encoding CID", err)
		}
		return value.String(c.String()), nil
	default:
		return value.String(hex.EncodeToString(sum)), nil
	}
}
