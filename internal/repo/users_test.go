package repo

import (
	"testing"

	"github.com/Hallssss0000/SGHSS-API/internal/auth"
	"github.com/Hallssss0000/SGHSS-API/internal/testutil"
)

func TestCreateUserAllocatesSequentialIDs(t *testing.T) {
	s := testutil.NewStore(t)

	a, err := CreateUser(s, "Ana", "ana@example.com", "hash", auth.RolePatient)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("primeiro id deveria ser 1, veio %d", a.ID)
	}
	b, err := CreateUser(s, "Leo", "leo@example.com", "hash", auth.RolePatient)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if b.ID != 2 {
		t.Fatalf("segundo id deveria ser 2, veio %d", b.ID)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := testutil.NewStore(t)
	if _, err := CreateUser(s, "Ana", "ana@example.com", "hash", auth.RolePatient); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateUser(s, "Outra", "ana@example.com", "hash", auth.RolePatient); err != ErrEmailTaken {
		t.Fatalf("esperava ErrEmailTaken, veio %v", err)
	}
}

// O id removido pode ser reutilizado: a alocação é max(id)+1, não um contador.
func TestNextIDAfterRemoval(t *testing.T) {
	s := testutil.NewStore(t)
	p1 := 10
	first, err := ScheduleAppointment(s, ScheduleRequest{
		CallerID: 1, CallerRole: auth.RoleAdmin, ProfessionalID: 2,
		ScheduledAt: "2026-12-01T10:00:00", Kind: KindInPerson, PatientID: &p1,
	})
	if err != nil {
		t.Fatalf("ScheduleAppointment: %v", err)
	}
	second, err := ScheduleAppointment(s, ScheduleRequest{
		CallerID: 1, CallerRole: auth.RoleAdmin, ProfessionalID: 2,
		ScheduledAt: "2026-12-01T11:00:00", Kind: KindInPerson, PatientID: &p1,
	})
	if err != nil {
		t.Fatalf("ScheduleAppointment: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids inesperados: %d, %d", first.ID, second.ID)
	}

	if _, _, err := DeleteAppointment(s, second.ID, 1, auth.RoleAdmin); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}
	third, err := ScheduleAppointment(s, ScheduleRequest{
		CallerID: 1, CallerRole: auth.RoleAdmin, ProfessionalID: 2,
		ScheduledAt: "2026-12-01T12:00:00", Kind: KindInPerson, PatientID: &p1,
	})
	if err != nil {
		t.Fatalf("ScheduleAppointment: %v", err)
	}
	if third.ID != 2 {
		t.Fatalf("id após remoção deveria ser 2 (max+1), veio %d", third.ID)
	}
}
