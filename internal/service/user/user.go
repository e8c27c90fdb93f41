package user

import (
	"context"
	"fmt"

	"delivery/internal/entities"
)

type User struct {
	repository Repository
	addresses  AddressRepository
	txManager  TxManager
}

func New(repository Repository, addresses AddressRepository, txManager TxManager) *User {
	return &User{
		repository: repository,
		addresses:  addresses,
		txManager:  txManager,
	}
}

func (s *User) GetProfile(ctx context.Context, id int64) (*entities.UserProfile, error) {
	if !isValidID(id) {
		return nil, ErrInvalidUserID
	}

	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	addresses, err := s.addresses.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user addresses: %w", err)
	}

	return &entities.UserProfile{
		User:      *userEntity,
		Addresses: addresses,
	}, nil
}

// UpdateProfile обновляет имя и телефон (обязательные) и опционально
// картинку профиля. Проверка занятости телефона и сам UPDATE идут в
// одной транзакции, иначе между проверкой и записью успеет вклиниться
// другой пользователь.
func (s *User) UpdateProfile(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil || !isValidID(*userModify.ID) {
		return nil, ErrInvalidUserID
	}
	if userModify.Name == nil || userModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}

	var updated *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		inUse, err := s.repository.PhoneInUse(ctx, *userModify.Phone, *userModify.ID)
		if err != nil {
			return fmt.Errorf("check phone: %w", err)
		}
		if inUse {
			return ErrPhoneTaken
		}

		userEntity, err := s.repository.Update(ctx, userModify)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		updated = userEntity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *User) AddAddress(ctx context.Context, addressModify entities.AddressModify) (*entities.Address, error) {
	if addressModify.UserID == nil || !isValidID(*addressModify.UserID) {
		return nil, ErrInvalidUserID
	}
	if addressModify.Address == nil || !isValidAddress(*addressModify.Address) {
		return nil, ErrInvalidAddress
	}

	addressEntity, err := s.addresses.Create(ctx, addressModify)
	if err != nil {
		return nil, fmt.Errorf("failed to add address: %w", err)
	}

	return addressEntity, nil
}

func (s *User) RemoveAddress(ctx context.Context, addressID, userID int64) error {
	if !isValidID(addressID) {
		return ErrInvalidAddress
	}
	if !isValidID(userID) {
		return ErrInvalidUserID
	}

	if err := s.addresses.Delete(ctx, addressID, userID); err != nil {
		return fmt.Errorf("failed to remove address: %w", err)
	}

	return nil
}
