// Package paths computes the standardized directory layout under the
// user-data root.
//
// Every component that needs an application directory derives it through
// this package so the protocol gate, the updater, and the attachment
// pipeline agree on a single layout:
//
//	<user-data>/
//	  ├── avatars.noindex/      (contact and group avatars)
//	  ├── badges.noindex/       (profile badge images)
//	  ├── drafts.noindex/       (draft attachments)
//	  ├── attachments.noindex/  (received and sent attachments)
//	  ├── stickers.noindex/     (sticker pack downloads)
//	  ├── temp/                 (scratch files)
//	  └── update-cache/         (downloaded installers)
//
// AllowedDirectories enumerates the roots the protocol gate accepts;
// it is computed once at startup and never changes afterwards.
package paths
