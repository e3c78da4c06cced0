// internal/signature/signature.go
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the hex HMAC-SHA256 Razorpay expects for a payment
// confirmation: the digest of "orderID|paymentID" keyed with the key secret.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the supplied signature matches the recomputed one.
// hmac.Equal keeps the comparison constant time.
func Verify(orderID, paymentID, supplied, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(supplied))
}
