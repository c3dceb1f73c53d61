package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"file-share-api/internal/application/ports"
	domain "file-share-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	return us.userRepository.FetchUserByUUID(ctx, uuid)
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return us.userRepository.FetchUserByEmail(ctx, email)
}

// FindShareTargets lists everyone except the requesting user, for the
// share-target picker.
func (us *UserService) FindShareTargets(ctx context.Context, selfUUID domain.UUID) (domain.Users, error) {
	id, err := us.userRepository.FetchInternalID(ctx, selfUUID)
	if err != nil {
		return nil, err
	}

	return us.userRepository.FetchUsersExcept(ctx, id)
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("users_registered_total").Inc()

	return uRet, nil
}
