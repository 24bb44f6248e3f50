package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	const plain = "senha-muito-secreta-123"
	hash, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == plain {
		t.Fatal("hash não pode ser igual ao texto puro")
	}
	if !CheckPassword(hash, plain) {
		t.Fatal("senha correta deveria validar")
	}
	if CheckPassword(hash, "senha-errada") {
		t.Fatal("senha errada não deveria validar")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("não-é-um-hash-bcrypt", "qualquer") {
		t.Fatal("hash malformado não deveria validar")
	}
}

func TestHashesDiffer(t *testing.T) {
	a, err := HashPassword("mesma-senha")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("mesma-senha")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("salts devem produzir hashes distintos")
	}
}
