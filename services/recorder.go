package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tpeo/attendbot/models"
	"github.com/tpeo/attendbot/services/logger"
	"github.com/tpeo/attendbot/sheetstore"
)

// KeyColumnAttendance is the semester-sheet column holding idempotency
// keys.
const KeyColumnAttendance = "E"

// claimTTL keeps redis claims alive well past the calendar day the key
// encodes, then lets them expire on their own.
const claimTTL = 48 * time.Hour

// releaseTimeout bounds the claim release, which runs detached from the
// request deadline: a claim left behind by a timed-out request would
// otherwise block retries for the rest of its TTL.
const releaseTimeout = 2 * time.Second

// Recorder reads and appends attendance records. The duplicate check
// and the append are separate store calls with no isolation between
// them; ClaimKey narrows that race window when redis is reachable but
// never closes it.
type Recorder struct {
	store    sheetstore.Store
	rdb      *redis.Client
	semester string
	logger   logger.Logger
}

// RecorderOptions configures NewRecorder. Redis is optional: a nil
// client disables the claim step.
type RecorderOptions struct {
	Store    sheetstore.Store
	Redis    *redis.Client
	Semester string
	Logger   logger.Logger
}

func NewRecorder(opts RecorderOptions) *Recorder {
	return &Recorder{
		store:    opts.Store,
		rdb:      opts.Redis,
		semester: opts.Semester,
		logger:   opts.Logger,
	}
}

// HasCheckedIn reports whether an attendance record with the given key
// already exists. The semester sheet grows all term, so this reads just
// the key column instead of the whole table.
func (r *Recorder) HasCheckedIn(ctx context.Context, key string) (bool, error) {
	values, err := r.store.ReadColumn(ctx, r.semester, KeyColumnAttendance)
	if err != nil {
		return false, err
	}
	for _, v := range values {
		if v == key {
			return true, nil
		}
	}
	return false, nil
}

// RecordAttendance appends the record to the semester sheet. Callers
// must have seen HasCheckedIn return false first.
func (r *Recorder) RecordAttendance(ctx context.Context, rec models.AttendanceRecord) error {
	return r.store.AppendRow(ctx, r.semester, rec.Row())
}

// ClaimKey takes a best-effort short-lived claim on an idempotency key
// before the sheet-side duplicate check. A false return means another
// request already holds the key and the caller should treat the
// check-in as a duplicate. When redis is down or not configured the
// claim is skipped entirely and the caller falls back to the plain
// check-then-append race.
func (r *Recorder) ClaimKey(ctx context.Context, key string) bool {
	if r.rdb == nil {
		return true
	}
	claimed, err := r.rdb.SetNX(ctx, "checkin:"+key, 1, claimTTL).Result()
	if err != nil {
		r.logger.Error("redis claim for %s failed, skipping: %v", key, err)
		return true
	}
	return claimed
}

// ReleaseKey drops a claim taken by ClaimKey, used when the check or
// append after a successful claim fails and the user should be able to
// retry. The release runs on a context detached from the request
// deadline: the common failure here is that very deadline expiring, and
// releasing on the expired context would leave the claim stuck until
// its TTL.
func (r *Recorder) ReleaseKey(ctx context.Context, key string) {
	if r.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if err := r.rdb.Del(ctx, "checkin:"+key).Err(); err != nil {
		r.logger.Error("redis release for %s failed: %v", key, err)
	}
}
