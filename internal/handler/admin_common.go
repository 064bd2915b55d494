package handler

import (
	"github.com/solhotel/backoffice/internal/model"
	"github.com/solhotel/backoffice/internal/repository"
)

// AdminHandler bundles the repositories behind the back-office
// surface.  Every route using it is guarded by the ADMIN role.
type AdminHandler struct {
	Categories   *repository.CategoryRepo
	Rooms        *repository.RoomRepo
	Services     *repository.ServiceRepo
	Reservations *repository.ReservationRepo
	Contracts    *repository.ContractRepo
	Payments     *repository.PaymentRepo
	Landing      *repository.LandingRepo
	Settings     *repository.SettingRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(
	categories *repository.CategoryRepo,
	rooms *repository.RoomRepo,
	services *repository.ServiceRepo,
	reservations *repository.ReservationRepo,
	contracts *repository.ContractRepo,
	payments *repository.PaymentRepo,
	landing *repository.LandingRepo,
	settings *repository.SettingRepo,
) *AdminHandler {
	if categories == nil || rooms == nil || services == nil || reservations == nil ||
		contracts == nil || payments == nil || landing == nil || settings == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		Categories:   categories,
		Rooms:        rooms,
		Services:     services,
		Reservations: reservations,
		Contracts:    contracts,
		Payments:     payments,
		Landing:      landing,
		Settings:     settings,
	}
}

// reservationTransitions encodes the legal status moves for a stay.
// FINALIZED and CANCELLED are terminal and have no outgoing edges.
var reservationTransitions = map[string]map[string]bool{
	model.ReservationPending:   {model.ReservationConfirmed: true, model.ReservationCancelled: true},
	model.ReservationConfirmed: {model.ReservationCheckIn: true, model.ReservationCancelled: true},
	model.ReservationCheckIn:   {model.ReservationFinalized: true},
}

// contractTransitions encodes the legal status moves for a service
// contract.  COMPLETED and CANCELLED are terminal.
var contractTransitions = map[string]map[string]bool{
	model.ContractPending:   {model.ContractConfirmed: true, model.ContractCancelled: true},
	model.ContractConfirmed: {model.ContractCompleted: true, model.ContractCancelled: true},
}
