package store

import (
	"github.com/jinzhu/gorm"

	"github.com/pfmo-ng/facility-api/schema"
)

// PFMOCore is the main datastore facade of the collection system: user
// accounts live in Postgres, submissions in MongoDB.
type PFMOCore interface {
	Ping() error

	// Users
	CreateUser(username, email, password, fullName, phone string, role schema.UserRole) (*schema.User, error)
	GetUser(id uint) (*schema.User, error)
	GetUserByUsername(username string) (*schema.User, error)
	ListUsers() ([]schema.User, error)
	DeleteUser(id uint) error
}

// PFMOStore is an implementation of PFMOCore
type PFMOStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewPFMOStore(ormDB *gorm.DB, mongo MongoStore) *PFMOStore {
	return &PFMOStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *PFMOStore) Ping() error {
	return s.ormDB.DB().Ping()
}
