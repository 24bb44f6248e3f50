package auth

import "golang.org/x/crypto/bcrypt"

// O custo fica gravado no próprio hash; mudar a constante não invalida hashes antigos.
const bcryptCost = 12

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compara em tempo constante; retorna false para hash malformado.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
