package repo

import (
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func UsersAll(s *store.Store) []User {
	var list []User
	s.Read(store.Users, &list)
	return list
}

func UserByID(s *store.Store, id int) *User {
	for _, u := range UsersAll(s) {
		if u.ID == id {
			u := u
			return &u
		}
	}
	return nil
}

func UserByEmail(s *store.Store, email string) *User {
	for _, u := range UsersAll(s) {
		if u.Email == email {
			u := u
			return &u
		}
	}
	return nil
}

// CreateUser aloca o próximo id (max+1) e grava o usuário sob o lock da
// coleção. Retorna ErrEmailTaken se o email já existir.
func CreateUser(s *store.Store, name, email, passwordHash, role string) (User, error) {
	var created User
	err := s.Update(store.Users, func(load func(interface{}), save func(interface{}) error) error {
		var users []User
		load(&users)
		nextID := 1
		for _, u := range users {
			if u.Email == email {
				return ErrEmailTaken
			}
			if u.ID >= nextID {
				nextID = u.ID + 1
			}
		}
		created = User{
			ID:           nextID,
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
			CreatedAt:    time.Now(),
		}
		users = append(users, created)
		return save(users)
	})
	return created, err
}

// UpdateUserNameEmail aplica alterações parciais de nome e email.
// Email duplicado (de outro usuário) retorna ErrEmailTaken.
func UpdateUserNameEmail(s *store.Store, id int, name, email *string) error {
	if name == nil && email == nil {
		return nil
	}
	return s.Update(store.Users, func(load func(interface{}), save func(interface{}) error) error {
		var users []User
		load(&users)
		idx := -1
		for i, u := range users {
			if u.ID == id {
				idx = i
			} else if email != nil && u.Email == *email {
				return ErrEmailTaken
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
		if name != nil {
			users[idx].Name = *name
		}
		if email != nil {
			users[idx].Email = *email
		}
		return save(users)
	})
}
