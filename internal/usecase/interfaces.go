package usecase

import "context"

// FirebaseAuthClient is the identity provider boundary: credential exchange
// and token verification live behind it so usecases never touch the SDK.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	TestConnection(ctx context.Context) error
}
