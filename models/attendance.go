package models

// AttendanceRecord is one row of the semester sheet, append-only:
// column A handle, B display name, C timestamp, D event display name,
// E idempotency key. At most one row should exist per key; that is
// enforced by a check before append, not by the store.
type AttendanceRecord struct {
	Handle    string
	Name      string
	Timestamp string
	EventName string
	Key       string
}

// Row encodes the record in sheet column order.
func (a *AttendanceRecord) Row() []string {
	return []string{a.Handle, a.Name, a.Timestamp, a.EventName, a.Key}
}
