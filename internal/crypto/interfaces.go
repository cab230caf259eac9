package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way credentials
// and checks candidates against them.
//
// Plaintext passwords never leave the hasher: callers store and compare only
// the encoded form returned by Hash.
type PasswordHasher interface {
	// Hash derives a fresh random salt and returns the self-describing
	// encoded credential (algorithm, parameters, salt and key).
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. The comparison runs
	// in constant time with respect to the derived key. A malformed encoded
	// value yields an error.
	Verify(password, encoded string) (bool, error)

	// VerifyDummy performs the same amount of work as Verify against an
	// internal throwaway credential. It is used when no stored credential
	// exists so that both failure paths cost the same.
	VerifyDummy(password string)
}
