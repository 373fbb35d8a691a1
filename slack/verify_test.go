package slack

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpeo/attendbot/errors"
)

const testSecret = "8f742231b10e8888abcd99yyyzzz85a5"

func TestVerifyRequest_ValidSignature(t *testing.T) {
	now := time.Unix(1614636300, 0)
	ts := strconv.FormatInt(now.Unix(), 10)
	body := []byte("user_name=jane.doe&text=checkin+cs")
	sig := Sign(testSecret, ts, body)

	assert.NoError(t, VerifyRequest(testSecret, ts, sig, body, now))
}

func TestVerifyRequest_TamperedBody(t *testing.T) {
	now := time.Unix(1614636300, 0)
	ts := strconv.FormatInt(now.Unix(), 10)
	sig := Sign(testSecret, ts, []byte("user_name=jane.doe&text=checkin+cs"))

	err := VerifyRequest(testSecret, ts, sig, []byte("user_name=mallory&text=checkin+cs"), now)
	assert.ErrorIs(t, err, errors.ErrBadSignature)
}

func TestVerifyRequest_WrongSecret(t *testing.T) {
	now := time.Unix(1614636300, 0)
	ts := strconv.FormatInt(now.Unix(), 10)
	body := []byte("user_name=jane.doe&text=checkin+cs")
	sig := Sign("some-other-secret", ts, body)

	err := VerifyRequest(testSecret, ts, sig, body, now)
	assert.ErrorIs(t, err, errors.ErrBadSignature)
}

func TestVerifyRequest_StaleTimestamp(t *testing.T) {
	now := time.Unix(1614636300, 0)
	old := now.Add(-6 * time.Minute)
	ts := strconv.FormatInt(old.Unix(), 10)
	body := []byte("user_name=jane.doe&text=checkin+cs")
	sig := Sign(testSecret, ts, body)

	err := VerifyRequest(testSecret, ts, sig, body, now)
	assert.ErrorIs(t, err, errors.ErrStaleTimestamp)
}

func TestVerifyRequest_FutureTimestamp(t *testing.T) {
	now := time.Unix(1614636300, 0)
	future := now.Add(6 * time.Minute)
	ts := strconv.FormatInt(future.Unix(), 10)
	body := []byte("user_name=jane.doe&text=checkin+cs")
	sig := Sign(testSecret, ts, body)

	err := VerifyRequest(testSecret, ts, sig, body, now)
	assert.ErrorIs(t, err, errors.ErrStaleTimestamp)
}

func TestVerifyRequest_GarbageTimestamp(t *testing.T) {
	err := VerifyRequest(testSecret, "not-a-number", "v0=abc", []byte("body"), time.Now())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMalformedInput))
}
