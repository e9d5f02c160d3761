// Package models provides data model definitions for the Inkwell backend.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// UUID is a wrapper around string for UUID v4 type safety.
type UUID string

// Value implements driver.Valuer for UUID.
func (u UUID) Value() (driver.Value, error) {
	return string(u), nil
}

// Scan implements sql.Scanner for UUID.
func (u *UUID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*u = ""
	case string:
		*u = UUID(v)
	case []byte:
		*u = UUID(v)
	default:
		return fmt.Errorf("cannot scan %T into UUID", value)
	}
	return nil
}

// String returns the string representation of the UUID.
func (u UUID) String() string {
	return string(u)
}

// StringList is a slice of strings stored as a JSON array in a TEXT column.
type StringList []string

// Value implements driver.Valuer for StringList.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for StringList.
func (s *StringList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(s))
}

// Note represents a user-owned titled document with content, tags,
// archive flag, and timestamps.
type Note struct {
	ID         UUID       `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	Title      string     `db:"title" json:"title"`
	Content    string     `db:"content" json:"content"` // may embed markup
	Image      string     `db:"image" json:"image,omitempty"`
	Tags       StringList `db:"tags" json:"tags"`
	IsArchived bool       `db:"is_archived" json:"is_archived"`
	CreatedAt  int64      `db:"created_at" json:"created_at"` // Unix milliseconds
	UpdatedAt  int64      `db:"updated_at" json:"updated_at"` // Unix milliseconds

	// Opaque classification fields. Carried through unchanged and never
	// interpreted by listing, search, or ordering.
	Name     string `db:"name" json:"name,omitempty"`
	Category string `db:"category" json:"category,omitempty"`
	Status   string `db:"status" json:"status,omitempty"`
	Location string `db:"location" json:"location,omitempty"`
}

// TableName returns the table name for Note.
func (Note) TableName() string {
	return "notes"
}

// Touch updates the UpdatedAt timestamp.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now().UnixMilli()
}

// NotePatch describes a partial update of a note. Nil fields are left
// unchanged. UserID, CreatedAt, and ID are not patchable.
type NotePatch struct {
	Title      *string     `json:"title,omitempty"`
	Content    *string     `json:"content,omitempty"`
	Image      *string     `json:"image,omitempty"`
	Tags       *StringList `json:"tags,omitempty"`
	IsArchived *bool       `json:"is_archived,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Category   *string     `json:"category,omitempty"`
	Status     *string     `json:"status,omitempty"`
	Location   *string     `json:"location,omitempty"`
}
