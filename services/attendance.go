package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/tpeo/attendbot/errors"
	"github.com/tpeo/attendbot/models"
	"github.com/tpeo/attendbot/services/logger"
)

// DefaultBudget leaves headroom inside the chat platform's 3 second
// response deadline. An answer arriving after that deadline is
// discarded by the platform, so a late success is worth nothing.
const DefaultBudget = 2500 * time.Millisecond

// RegisterKeyword is stripped from the raw command text to isolate the
// display name during registration.
const RegisterKeyword = "register"

// AttendanceService orchestrates register and check-in requests over
// the resolver, window, and recorder under a per-request deadline
// budget.
type AttendanceService struct {
	resolver *Resolver
	recorder *Recorder
	window   CheckInWindow
	clock    Clock
	logger   logger.Logger
	budget   time.Duration
}

// AttendanceServiceOptions configures NewAttendanceService
type AttendanceServiceOptions struct {
	Resolver *Resolver
	Recorder *Recorder
	Window   CheckInWindow
	Clock    Clock
	Logger   logger.Logger
	Budget   time.Duration
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	budget := opts.Budget
	if budget == 0 {
		budget = DefaultBudget
	}
	window := opts.Window
	if window.Grace == 0 {
		window.Grace = DefaultGrace
	}
	return &AttendanceService{
		resolver: opts.Resolver,
		recorder: opts.Recorder,
		window:   window,
		clock:    opts.Clock,
		logger:   opts.Logger,
		budget:   budget,
	}
}

// Register adds a new user to the attendance system. rawText is the
// cleaned command text with its original casing, since the display
// name is extracted from it.
func (s *AttendanceService) Register(ctx context.Context, actorID, rawText string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	exists, err := s.resolver.UserExists(ctx, actorID)
	if err != nil {
		return s.failed("register", actorID, err)
	}
	if exists {
		return Outcome{
			Kind:   KindRejected,
			Header: "User Exists Already",
			Body:   "You are already registered in the attendance system.",
		}
	}

	name := strings.TrimSpace(stripKeyword(rawText, RegisterKeyword))
	if name == "" {
		return Outcome{
			Kind:   KindRejected,
			Header: "Invalid Registration",
			Body:   "Add your name after the command, like: register First_Name Last_Name",
		}
	}

	user := models.UserRecord{Name: name, Handle: actorID}
	if err := s.resolver.AppendUser(ctx, user); err != nil {
		return s.failed("register", actorID, err)
	}
	s.logger.Info("registered %s as %q", actorID, name)
	return Outcome{
		Kind:   KindSuccess,
		Header: "Success 💡",
		Body:   fmt.Sprintf("Registered %s into attendance system. You can now check into events.", name),
	}
}

// CheckIn records attendance for one event. The user and event lookups
// are independent reads against different sheets, so they run
// concurrently; everything after depends on both results and stays
// sequential.
func (s *AttendanceService) CheckIn(ctx context.Context, actorID, abbrev string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	type userResult struct {
		user *models.UserRecord
		err  error
	}
	type eventResult struct {
		event *models.EventDefinition
		err   error
	}
	userCh := make(chan userResult, 1)
	eventCh := make(chan eventResult, 1)
	go func() {
		user, err := s.resolver.ResolveUser(ctx, actorID)
		userCh <- userResult{user, err}
	}()
	go func() {
		event, err := s.resolver.ResolveEvent(ctx, abbrev)
		eventCh <- eventResult{event, err}
	}()
	// Both sends are buffered, so draining both never leaks a
	// goroutine even when the first result already decides the
	// outcome.
	ur := <-userCh
	er := <-eventCh

	if ur.err != nil {
		return s.failed("checkin", actorID, ur.err)
	}
	if er.err != nil {
		return s.failed("checkin", actorID, er.err)
	}
	if ur.user == nil {
		return Outcome{
			Kind:   KindRejected,
			Header: "Invalid: User Doesn't Exist",
			Body:   "Register your account before checking in. Type this into Slack: /tpeo register First_Name Last_Name",
		}
	}
	if er.event == nil {
		return s.unknownEvent(ctx, actorID, abbrev)
	}

	now := s.clock.Now()
	if !s.window.Admits(er.event, now) {
		return Outcome{
			Kind:   KindRejected,
			Header: "Invalid Check In Time 😔",
			Body:   fmt.Sprintf("%s is closed for check in at this time.", er.event.Name),
		}
	}

	key := IdempotencyKey(actorID, er.event.Abbrev, now)
	if !s.recorder.ClaimKey(ctx, key) {
		return s.duplicate()
	}
	checkedIn, err := s.recorder.HasCheckedIn(ctx, key)
	if err != nil {
		s.recorder.ReleaseKey(ctx, key)
		return s.failed("checkin", actorID, err)
	}
	if checkedIn {
		return s.duplicate()
	}

	timestamp := now.Format(TimestampLayout)
	rec := models.AttendanceRecord{
		Handle:    actorID,
		Name:      ur.user.Name,
		Timestamp: timestamp,
		EventName: er.event.Name,
		Key:       key,
	}
	if err := s.recorder.RecordAttendance(ctx, rec); err != nil {
		s.recorder.ReleaseKey(ctx, key)
		return s.failed("checkin", actorID, err)
	}
	s.logger.Info("checked %s into %s", actorID, er.event.Name)
	return Outcome{
		Kind:   KindSuccess,
		Header: "Success 💡",
		Body:   fmt.Sprintf("Checked %s into %s at %s", ur.user.Name, er.event.Name, timestamp),
	}
}

// stripKeyword removes the first occurrence of the trigger keyword,
// matched case-insensitively, while keeping the rest of the text in its
// original casing. The scan slides over the original string rather than
// indexing into a lowered copy, whose byte offsets drift on characters
// like U+0130 that change length when lowered.
func stripKeyword(text, keyword string) string {
	for i := range text {
		end := i + len(keyword)
		if end > len(text) {
			break
		}
		if strings.EqualFold(text[i:end], keyword) {
			return text[:i] + text[end:]
		}
	}
	return text
}

// unknownEvent builds the rejection listing every valid abbreviation,
// with a closest-match hint when the typo is near a real one.
func (s *AttendanceService) unknownEvent(ctx context.Context, actorID, abbrev string) Outcome {
	events, err := s.resolver.ListEvents(ctx)
	if err != nil {
		return s.failed("checkin", actorID, err)
	}
	lines := make([]string, 0, len(events)+1)
	lines = append(lines, "Use these valid event abbreviations: ")
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Abbrev, e.Name))
	}
	body := strings.Join(lines, "\n")
	if hint, ok := SuggestAbbrev(abbrev, events); ok {
		body += fmt.Sprintf("\nDid you mean %s?", hint)
	}
	return Outcome{
		Kind:   KindRejected,
		Header: "Invalid Event Abbreviation 😳",
		Body:   body,
	}
}

func (s *AttendanceService) duplicate() Outcome {
	return Outcome{
		Kind:   KindRejected,
		Header: "Invalid Check In",
		Body:   "You already checked in!",
	}
}

// failed maps internal errors onto a generic Failed outcome. Store
// detail is logged, never shown to the user. No retries: a transient
// fault surfaces immediately, because a retry risks blowing the
// platform deadline and a late answer is discarded anyway.
func (s *AttendanceService) failed(op, actorID string, err error) Outcome {
	s.logger.Error("%s for %s failed: %v", op, actorID, err)
	if stderrors.Is(err, context.DeadlineExceeded) || errors.HasCode(err, errors.ErrCodeDeadline) {
		return Outcome{
			Kind:   KindFailed,
			Header: "Request Timed Out",
			Body:   "That took too long to process. Give it another try.",
		}
	}
	return Outcome{
		Kind:   KindFailed,
		Header: "Something Went Wrong",
		Body:   "The attendance sheet couldn't be reached. Try again in a minute.",
	}
}
