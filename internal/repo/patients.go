package repo

import (
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func PatientsAll(s *store.Store) []PatientProfile {
	var list []PatientProfile
	s.Read(store.Patients, &list)
	return list
}

func PatientProfileByID(s *store.Store, id int) *PatientProfile {
	for _, p := range PatientsAll(s) {
		if p.ID == id {
			p := p
			return &p
		}
	}
	return nil
}

// CreatePatientProfile grava o perfil 1:1 do usuário (id já alocado em users).
func CreatePatientProfile(s *store.Store, id int, phone, birthDate string, address map[string]interface{}) (PatientProfile, error) {
	p := PatientProfile{
		ID:        id,
		Phone:     phone,
		BirthDate: birthDate,
		Address:   address,
		CreatedAt: time.Now(),
	}
	err := s.Update(store.Patients, func(load func(interface{}), save func(interface{}) error) error {
		var list []PatientProfile
		load(&list)
		list = append(list, p)
		return save(list)
	})
	return p, err
}

// UpdatePatientProfile aplica alterações parciais; campos nil não mudam.
func UpdatePatientProfile(s *store.Store, id int, phone, birthDate *string, address map[string]interface{}) error {
	return s.Update(store.Patients, func(load func(interface{}), save func(interface{}) error) error {
		var list []PatientProfile
		load(&list)
		for i := range list {
			if list[i].ID != id {
				continue
			}
			if phone != nil {
				list[i].Phone = *phone
			}
			if birthDate != nil {
				list[i].BirthDate = *birthDate
			}
			if address != nil {
				list[i].Address = address
			}
			return save(list)
		}
		return ErrNotFound
	})
}
