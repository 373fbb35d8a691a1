package models

// UserRecord is one row of the Users sheet: column A holds the display
// name, column B the platform-assigned handle. Rows are created by
// registration and never updated or deleted by this service.
type UserRecord struct {
	Name   string
	Handle string
}

// UserFromRow decodes a Users sheet row. Returns nil for rows too short
// to carry both columns.
func UserFromRow(row []string) *UserRecord {
	if len(row) < 2 {
		return nil
	}
	return &UserRecord{
		Name:   row[0],
		Handle: row[1],
	}
}

// Row encodes the record in sheet column order.
func (u *UserRecord) Row() []string {
	return []string{u.Name, u.Handle}
}
