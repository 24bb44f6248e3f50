package repo

import (
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func appendNotification(s *store.Store, n Notification) error {
	return s.Update(store.Notifications, func(load func(interface{}), save func(interface{}) error) error {
		var list []Notification
		load(&list)
		list = append(list, n)
		return save(list)
	})
}

// NotifyPatient registra uma notificação endereçada ao paciente. Efeito
// colateral de transições do ciclo de vida; nunca é lido pelo core.
func NotifyPatient(s *store.Store, patientID int, message string) error {
	return appendNotification(s, Notification{
		RecipientID: patientID,
		Message:     message,
		Timestamp:   time.Now(),
	})
}

// NotifyProfessional registra uma notificação endereçada ao profissional
// (gravada na remoção de consulta, além da do paciente).
func NotifyProfessional(s *store.Store, professionalID int, message string) error {
	return appendNotification(s, Notification{
		ProfessionalID: professionalID,
		Message:        message,
		Timestamp:      time.Now(),
	})
}

func NotificationsAll(s *store.Store) []Notification {
	var list []Notification
	s.Read(store.Notifications, &list)
	return list
}
