package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/tpeo/attendbot/errors"
)

// Requests older (or newer) than this are rejected before the
// signature is even checked, per Slack's replay-protection guidance.
const timestampTolerance = 5 * time.Minute

const signatureVersion = "v0"

// VerifyRequest authenticates an inbound Slack request: the timestamp
// header must be within tolerance of now and the signature header must
// match HMAC-SHA256 over the v0 basestring, compared in constant time.
func VerifyRequest(signingSecret, timestampHeader, signatureHeader string, body []byte, now time.Time) error {
	ts, err := strconv.ParseFloat(timestampHeader, 64)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeMalformedInput,
			"bad request timestamp", err)
	}
	age := now.Sub(time.Unix(int64(ts), 0))
	if age > timestampTolerance || age < -timestampTolerance {
		return errors.ErrStaleTimestamp
	}
	if !hmac.Equal([]byte(Sign(signingSecret, timestampHeader, body)), []byte(signatureHeader)) {
		return errors.ErrBadSignature
	}
	return nil
}

// Sign computes the v0 signature for a timestamp and raw body.
func Sign(signingSecret, timestamp string, body []byte) string {
	base := signatureVersion + ":" + timestamp + ":" + string(body)
	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(base))
	return signatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))
}
