package auth

import "golang.org/x/crypto/bcrypt"

// BcryptVerifier checks plaintext passwords against bcrypt hashes.
// CompareHashAndPassword is constant-time with respect to the hash contents.
type BcryptVerifier struct {
	Cost int
}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{Cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (v *BcryptVerifier) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
