package usecase

import "context"

// ProfileUsecase manages the account's profile image, stored as an opaque
// base64-encoded string.
type ProfileUsecase interface {
	GetProfileImage(ctx context.Context, accountID int64) (string, error)
	SetProfileImage(ctx context.Context, accountID int64, image string) error
	ClearProfileImage(ctx context.Context, accountID int64) error
}
