package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/pfmo-ng/facility-api/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrUserTaken    = fmt.Errorf("username or email already registered")
)

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *PFMOStore) CreateUser(username, email, password, fullName, phone string, role schema.UserRole) (*schema.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var existing schema.User
	if err := s.ormDB.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		return nil, ErrUserTaken
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	user := schema.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       fullName,
		Phone:          phone,
		Role:           role,
		IsActive:       true,
	}

	if err := s.ormDB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser returns a user by id.
func (s *PFMOStore) GetUser(id uint) (*schema.User, error) {
	var user schema.User
	if err := s.ormDB.Where("id = ?", id).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns a user by username.
func (s *PFMOStore) GetUserByUsername(username string) (*schema.User, error) {
	var user schema.User
	if err := s.ormDB.Where("username = ?", username).First(&user).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every account.
func (s *PFMOStore) ListUsers() ([]schema.User, error) {
	users := make([]schema.User, 0)
	if err := s.ormDB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account permanently.
func (s *PFMOStore) DeleteUser(id uint) error {
	result := s.ormDB.Delete(schema.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func VerifyPassword(user *schema.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil
}
