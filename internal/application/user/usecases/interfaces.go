package usecases

import "context"

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*UserSummary, error)
}
