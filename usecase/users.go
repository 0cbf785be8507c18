package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

func NewUserService(usersRepo *repository.UsersRepo) *UserService {
	return &UserService{UsersRepo: usersRepo}
}

// CreateUser validates the registration payload, hashes the password and
// stores the user.
func (svc *UserService) CreateUser(ctx context.Context, user *model.User) error {
	if err := utils.Validate.Struct(user); err != nil {
		return errors.New("invalid user data")
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return err
	}

	user.UserID = utils.GenerateUserID()
	user.Password = hashed
	user.CreatedAt = time.Now()
	if user.Theme == "" {
		user.Theme = "light"
	}

	return svc.UsersRepo.CreateUser(ctx, user)
}

func (svc *UserService) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return svc.UsersRepo.FindUser(ctx, userID)
}

func (svc *UserService) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return svc.UsersRepo.FindUserByUsername(ctx, username)
}

// ChangePassword verifies the current password and rejects reuse before
// storing the new hash.
func (svc *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if !services.ComparePasswords(user.Password, currentPassword) {
		return errors.New("current password is incorrect")
	}

	if services.ComparePasswords(user.Password, newPassword) {
		return errors.New("new password must be different from the current password")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return svc.UsersRepo.UpdateUserPassword(ctx, userID, hashed)
}

// ChangeEmail updates the account email after a password check
func (svc *UserService) ChangeEmail(ctx context.Context, userID, password, newEmail string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if !services.ComparePasswords(user.Password, password) {
		return errors.New("password is incorrect")
	}

	if user.Email == newEmail {
		return errors.New("new email must be different from the current email")
	}

	return svc.UsersRepo.UpdateUserEmail(ctx, userID, newEmail)
}
