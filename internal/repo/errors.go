package repo

import "errors"

var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrEmailTaken      = errors.New("email já cadastrado")
	ErrSlotTaken       = errors.New("horário ocupado para este profissional")
	ErrForbidden       = errors.New("acesso não autorizado")
	ErrPatientRequired = errors.New("id do paciente é necessário")
	// ErrCompletedImmutable: consulta realizada não pode ser removida.
	ErrCompletedImmutable = errors.New("consulta realizada não pode ser removida")
	// ErrNotScheduled: só consultas agendadas podem ser atendidas.
	ErrNotScheduled = errors.New("consulta não está agendada")
)
