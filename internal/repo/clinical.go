package repo

import (
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

// AppendAttendance grava o atendimento gerado na conclusão de uma consulta.
func AppendAttendance(s *store.Store, appt Appointment, notes string, ts time.Time) (Attendance, error) {
	a := Attendance{
		AppointmentID:  appt.ID,
		ProfessionalID: appt.ProfessionalID,
		PatientID:      appt.PatientID,
		Timestamp:      ts,
		Notes:          notes,
	}
	err := s.Update(store.Attendances, func(load func(interface{}), save func(interface{}) error) error {
		var list []Attendance
		load(&list)
		list = append(list, a)
		return save(list)
	})
	return a, err
}

// AppendRecordEntry grava a entrada do prontuário (histórico append-only do paciente).
func AppendRecordEntry(s *store.Store, appt Appointment, description string, ts time.Time) error {
	e := RecordEntry{
		PatientID:      appt.PatientID,
		Timestamp:      ts,
		Description:    description,
		ProfessionalID: appt.ProfessionalID,
		AppointmentID:  appt.ID,
	}
	return s.Update(store.Records, func(load func(interface{}), save func(interface{}) error) error {
		var list []RecordEntry
		load(&list)
		list = append(list, e)
		return save(list)
	})
}

func AttendancesAll(s *store.Store) []Attendance {
	var list []Attendance
	s.Read(store.Attendances, &list)
	return list
}

func RecordEntriesByPatient(s *store.Store, patientID int) []RecordEntry {
	var list []RecordEntry
	s.Read(store.Records, &list)
	out := make([]RecordEntry, 0, len(list))
	for _, e := range list {
		if e.PatientID == patientID {
			out = append(out, e)
		}
	}
	return out
}
