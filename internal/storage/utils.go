package storage

import (
	"github.com/google/uuid"
)

// ProfileFileName generates a unique file name for a user's profile image.
// The extension should include the leading dot (as returned by filepath.Ext).
func ProfileFileName(cin, extension string) string {
	if extension != "" && extension[0] != '.' {
		extension = "." + extension
	}
	return "profile-" + cin + "-" + uuid.New().String() + extension
}
