package repo

import (
	"fmt"
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/auth"
	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func AppointmentsAll(s *store.Store) []Appointment {
	var list []Appointment
	s.Read(store.Appointments, &list)
	return list
}

func AppointmentByID(s *store.Store, id int) *Appointment {
	for _, a := range AppointmentsAll(s) {
		if a.ID == id {
			a := a
			return &a
		}
	}
	return nil
}

// slotTaken: existe consulta AGENDADA para o mesmo (profissional, horário)?
// excludeID ignora a própria consulta no reagendamento.
func slotTaken(list []Appointment, professionalID int, scheduledAt string, excludeID int) bool {
	for _, a := range list {
		if a.ProfessionalID == professionalID && a.ScheduledAt == scheduledAt &&
			a.Status == StatusScheduled && a.ID != excludeID {
			return true
		}
	}
	return false
}

// ScheduleRequest carrega os dados do agendamento mais o contexto do chamador,
// porque a resolução do paciente e a autorização dependem do registro carregado
// e precisam acontecer sob o lock da coleção, na mesma ordem das regras:
// conflito (409), paciente ausente (400), agenda alheia (403).
type ScheduleRequest struct {
	CallerID       int
	CallerRole     string
	ProfessionalID int
	ScheduledAt    string
	Kind           string
	PatientID      *int // obrigatório quando o chamador não é PATIENT
	RemoteLinkBase string
}

// ScheduleAppointment cria a consulta com status SCHEDULED. Consulta remota
// recebe link determinístico derivado do id recém-alocado.
func ScheduleAppointment(s *store.Store, req ScheduleRequest) (Appointment, error) {
	var created Appointment
	err := s.Update(store.Appointments, func(load func(interface{}), save func(interface{}) error) error {
		var list []Appointment
		load(&list)
		if slotTaken(list, req.ProfessionalID, req.ScheduledAt, 0) {
			return ErrSlotTaken
		}
		patientID := 0
		switch {
		case req.CallerRole == auth.RolePatient:
			patientID = req.CallerID
		case req.PatientID != nil:
			patientID = *req.PatientID
		default:
			return ErrPatientRequired
		}
		if req.CallerRole == auth.RoleProfessional && req.ProfessionalID != req.CallerID {
			return ErrForbidden
		}
		nextID := 1
		for _, a := range list {
			if a.ID >= nextID {
				nextID = a.ID + 1
			}
		}
		link := ""
		if req.Kind == KindRemote {
			link = fmt.Sprintf("%s/%d", req.RemoteLinkBase, nextID)
		}
		created = Appointment{
			ID:             nextID,
			PatientID:      patientID,
			ProfessionalID: req.ProfessionalID,
			ScheduledAt:    req.ScheduledAt,
			Status:         StatusScheduled,
			Kind:           req.Kind,
			RemoteLink:     link,
			CreatedAt:      time.Now(),
			CreatedBy:      req.CallerID,
		}
		list = append(list, created)
		return save(list)
	})
	return created, err
}

// AppointmentUpdate descreve um PUT: reagendamento e/ou mudança de status.
// HasPatientID/HasProfessionalID registram se o corpo trouxe o campo: quem
// envia o campo que reatribuiria a posse não passa pela checagem de dono,
// e o campo em si nunca é aplicado.
type AppointmentUpdate struct {
	ScheduledAt       *string
	Status            *string
	HasPatientID      bool
	HasProfessionalID bool
}

type UpdateResult struct {
	Appointment Appointment
	Rescheduled bool
	Canceled    bool
}

func UpdateAppointment(s *store.Store, id, callerID int, callerRole string, upd AppointmentUpdate) (UpdateResult, error) {
	var res UpdateResult
	err := s.Update(store.Appointments, func(load func(interface{}), save func(interface{}) error) error {
		var list []Appointment
		load(&list)
		idx := -1
		for i, a := range list {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
		appt := list[idx]
		if callerRole == auth.RolePatient && appt.PatientID != callerID && !upd.HasPatientID {
			return ErrForbidden
		}
		if callerRole == auth.RoleProfessional && appt.ProfessionalID != callerID && !upd.HasProfessionalID {
			return ErrForbidden
		}
		if upd.ScheduledAt != nil {
			if slotTaken(list, appt.ProfessionalID, *upd.ScheduledAt, id) {
				return ErrSlotTaken
			}
			list[idx].ScheduledAt = *upd.ScheduledAt
			res.Rescheduled = true
		}
		// Status fora do conjunto conhecido é ignorado em silêncio.
		if upd.Status != nil {
			switch *upd.Status {
			case StatusScheduled, StatusCompleted, StatusCanceled:
				list[idx].Status = *upd.Status
				res.Canceled = *upd.Status == StatusCanceled
			}
		}
		if err := save(list); err != nil {
			return err
		}
		res.Appointment = list[idx]
		return nil
	})
	return res, err
}

// DeleteAppointment remove a consulta e retorna o registro removido mais a
// regra que autorizou a remoção (para auditoria). Consulta COMPLETED nunca é
// removível; CANCELED e SCHEDULED são.
func DeleteAppointment(s *store.Store, id, callerID int, callerRole string) (Appointment, string, error) {
	var removed Appointment
	var reason string
	err := s.Update(store.Appointments, func(load func(interface{}), save func(interface{}) error) error {
		var list []Appointment
		load(&list)
		idx := -1
		for i, a := range list {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
		appt := list[idx]
		switch {
		case callerRole == auth.RoleAdmin:
			reason = "Perfil ADMIN tem acesso total"
		case callerRole == auth.RoleProfessional && appt.ProfessionalID == callerID:
			reason = "Profissional pode deletar seus próprios agendamentos"
		case callerRole == auth.RolePatient && appt.PatientID == callerID:
			reason = "Paciente pode deletar seus próprios agendamentos"
		default:
			return ErrForbidden
		}
		if appt.Status == StatusCompleted {
			return ErrCompletedImmutable
		}
		removed = appt
		list = append(list[:idx], list[idx+1:]...)
		return save(list)
	})
	return removed, reason, err
}

// CompleteAppointment efetiva SCHEDULED → COMPLETED. Só o profissional dono da
// consulta pode atender; o guard de rota já restringiu a PROFESSIONAL/ADMIN.
func CompleteAppointment(s *store.Store, id, professionalID int) (Appointment, error) {
	var completed Appointment
	err := s.Update(store.Appointments, func(load func(interface{}), save func(interface{}) error) error {
		var list []Appointment
		load(&list)
		idx := -1
		for i, a := range list {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}
		if list[idx].ProfessionalID != professionalID {
			return ErrForbidden
		}
		if list[idx].Status != StatusScheduled {
			return ErrNotScheduled
		}
		list[idx].Status = StatusCompleted
		if err := save(list); err != nil {
			return err
		}
		completed = list[idx]
		return nil
	})
	return completed, err
}
