package repositories

import "gutcheck/internal/models"

// UserRepository defines the interface for user data access. There is no
// lookup by id: the auth middleware trusts the token claim and never
// re-fetches the user record.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
}
