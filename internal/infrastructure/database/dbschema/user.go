package dbschema

import (
	"github.com/HinduAI/Nara/internal/domain/user"
	"github.com/HinduAI/Nara/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User represents the persisted user schema tied to an external identity provider.
type User struct {
	BaseModel
	ExternalID string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_external_id"`
	Email      *string `gorm:"type:varchar(320);uniqueIndex:ux_users_email,where:email IS NOT NULL"`
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		ExternalID: u.ExternalID,
		Email:      u.Email,
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}

	return &user.User{
		ID:         u.ID,
		ExternalID: u.ExternalID,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
