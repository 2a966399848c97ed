package paths

import (
	"fmt"
	"path/filepath"
)

// User-data subdirectory names. The .noindex suffix keeps platform
// search indexers out of attachment content.
const (
	AvatarsDir     = "avatars.noindex"
	BadgesDir      = "badges.noindex"
	DraftsDir      = "drafts.noindex"
	AttachmentsDir = "attachments.noindex"
	StickersDir    = "stickers.noindex"
	TempDir        = "temp"
	UpdateCacheDir = "update-cache"
)

// Avatars returns the avatar directory under the user-data root.
func Avatars(userData string) string {
	return filepath.Join(userData, AvatarsDir)
}

// Badges returns the badge image directory under the user-data root.
func Badges(userData string) string {
	return filepath.Join(userData, BadgesDir)
}

// Drafts returns the draft attachment directory under the user-data root.
func Drafts(userData string) string {
	return filepath.Join(userData, DraftsDir)
}

// Attachments returns the attachment directory under the user-data root.
func Attachments(userData string) string {
	return filepath.Join(userData, AttachmentsDir)
}

// Stickers returns the sticker download directory under the user-data root.
func Stickers(userData string) string {
	return filepath.Join(userData, StickersDir)
}

// Temp returns the scratch directory under the user-data root.
func Temp(userData string) string {
	return filepath.Join(userData, TempDir)
}

// UpdateCache returns the installer cache directory under the user-data root.
func UpdateCache(userData string) string {
	return filepath.Join(userData, UpdateCacheDir)
}

// AllowedDirectories returns every root the protocol gate should accept:
// the user-data root itself, the install root, and the named user-data
// subdirectories. Order matters only for early-exit efficiency during
// matching, not for correctness.
func AllowedDirectories(userData, install string) []string {
	return []string{
		userData,
		install,
		Avatars(userData),
		Badges(userData),
		Drafts(userData),
		Attachments(userData),
		Stickers(userData),
		Temp(userData),
		UpdateCache(userData),
	}
}

// Validate checks that the collaborator-supplied roots are usable for
// allow-list construction.
func Validate(userData, install string) error {
	if userData == "" {
		return fmt.Errorf("user-data root cannot be empty")
	}
	if install == "" {
		return fmt.Errorf("install root cannot be empty")
	}
	if !filepath.IsAbs(userData) {
		return fmt.Errorf("user-data root must be absolute: %s", userData)
	}
	if !filepath.IsAbs(install) {
		return fmt.Errorf("install root must be absolute: %s", install)
	}
	return nil
}
