// Package models provides data model definitions for the Inkwell backend.
package models

// Default theme values applied when a user has no stored preferences.
const (
	DefaultColorTheme = "default"
	DefaultFontTheme  = "sans"
)

// Preferences represents a user's theme preferences.
type Preferences struct {
	UserID     string `db:"user_id" json:"user_id"`
	ColorTheme string `db:"color_theme" json:"color_theme"`
	FontTheme  string `db:"font_theme" json:"font_theme"`
}

// TableName returns the table name for Preferences.
func (Preferences) TableName() string {
	return "user_preferences"
}

// DefaultPreferences returns the preferences used for a user with no
// stored record.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:     userID,
		ColorTheme: DefaultColorTheme,
		FontTheme:  DefaultFontTheme,
	}
}
