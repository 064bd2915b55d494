package handler

import (
	"testing"

	"github.com/solhotel/backoffice/internal/model"
)

func TestReservationTransitions(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending can be confirmed", model.ReservationPending, model.ReservationConfirmed, true},
		{"pending can be cancelled", model.ReservationPending, model.ReservationCancelled, true},
		{"pending cannot skip to check-in", model.ReservationPending, model.ReservationCheckIn, false},
		{"confirmed can check in", model.ReservationConfirmed, model.ReservationCheckIn, true},
		{"confirmed can be cancelled", model.ReservationConfirmed, model.ReservationCancelled, true},
		{"confirmed cannot jump to finalized", model.ReservationConfirmed, model.ReservationFinalized, false},
		{"check-in can be finalized", model.ReservationCheckIn, model.ReservationFinalized, true},
		{"check-in cannot be cancelled", model.ReservationCheckIn, model.ReservationCancelled, false},
		{"finalized is terminal", model.ReservationFinalized, model.ReservationConfirmed, false},
		{"cancelled is terminal", model.ReservationCancelled, model.ReservationPending, false},
		{"unknown status has no moves", "BOGUS", model.ReservationConfirmed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reservationTransitions[tt.from][tt.to]; got != tt.want {
				t.Errorf("transition %s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestContractTransitions(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending can be confirmed", model.ContractPending, model.ContractConfirmed, true},
		{"pending can be cancelled", model.ContractPending, model.ContractCancelled, true},
		{"pending cannot jump to completed", model.ContractPending, model.ContractCompleted, false},
		{"confirmed can be completed", model.ContractConfirmed, model.ContractCompleted, true},
		{"confirmed can be cancelled", model.ContractConfirmed, model.ContractCancelled, true},
		{"completed is terminal", model.ContractCompleted, model.ContractConfirmed, false},
		{"cancelled is terminal", model.ContractCancelled, model.ContractPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contractTransitions[tt.from][tt.to]; got != tt.want {
				t.Errorf("transition %s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
