package service

import "fmt"

// Storage key layout. These must stay bit-exact: pre-existing stored data
// was written under the same scheme.
//
//	user/{ownerID}/games/{gameID}/files/...        deployed bundle contents
//	user/{ownerID}/games/{gameID}/compressed.zip   raw archive backup
//	user/{ownerID}/games/{gameID}/screenshots/{n}  screenshot asset
//	user/{ownerID}/profile/avatar{ext}             avatar asset

// GamePrefix is the root of everything stored for one game.
func GamePrefix(ownerID, gameID uint) string {
	return fmt.Sprintf("user/%d/games/%d/", ownerID, gameID)
}

// BundleFilesPrefix holds the deployed bundle contents.
func BundleFilesPrefix(ownerID, gameID uint) string {
	return GamePrefix(ownerID, gameID) + "files/"
}

// BundleFileKey addresses one deployed bundle file by its stem-stripped
// relative path.
func BundleFileKey(ownerID, gameID uint, relPath string) string {
	return BundleFilesPrefix(ownerID, gameID) + relPath
}

// BundleArchiveKey addresses the raw archive backup.
func BundleArchiveKey(ownerID, gameID uint) string {
	return GamePrefix(ownerID, gameID) + "compressed.zip"
}

// ScreenshotKey addresses a screenshot by its derived filename.
func ScreenshotKey(ownerID, gameID uint, name string) string {
	return GamePrefix(ownerID, gameID) + "screenshots/" + name
}

// AvatarKey addresses a user's avatar. The name is fixed; only the
// extension follows the upload.
func AvatarKey(ownerID uint, ext string) string {
	return fmt.Sprintf("user/%d/profile/avatar%s", ownerID, ext)
}
