package repo

import (
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func ProfessionalsAll(s *store.Store) []ProfessionalProfile {
	var list []ProfessionalProfile
	s.Read(store.Professionals, &list)
	return list
}

func ProfessionalByID(s *store.Store, id int) *ProfessionalProfile {
	for _, p := range ProfessionalsAll(s) {
		if p.ID == id {
			p := p
			return &p
		}
	}
	return nil
}

func CreateProfessionalProfile(s *store.Store, id int, name, specialty, licenseNumber string) (ProfessionalProfile, error) {
	p := ProfessionalProfile{
		ID:            id,
		Name:          name,
		Specialty:     specialty,
		LicenseNumber: licenseNumber,
		CreatedAt:     time.Now(),
	}
	err := s.Update(store.Professionals, func(load func(interface{}), save func(interface{}) error) error {
		var list []ProfessionalProfile
		load(&list)
		list = append(list, p)
		return save(list)
	})
	return p, err
}
