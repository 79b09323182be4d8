package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/upservice/user-profile-service/internal/userprofile/app/encoding"
)

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() encoding.PasswordHasher {
	return bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h bcryptHasher) CompareHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
