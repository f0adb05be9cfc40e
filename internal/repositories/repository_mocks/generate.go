package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks

// Regenerate with:
//   go generate ./internal/repositories/repository_mocks
