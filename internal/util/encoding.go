package util

import "encoding/base64"

// B64URLEncode returns the padded URL-safe base64 encoding of src.
func B64URLEncode(src []byte) string {
	return base64.URLEncoding.EncodeToString(src)
}
