package inventory

type ReservationStatus string

const (
	ReservationReserved  ReservationStatus = "RESERVED"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationReleased  ReservationStatus = "RELEASED"
)

func (s ReservationStatus) String() string {
	return string(s)
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationReserved, ReservationConfirmed, ReservationReleased:
		return true
	default:
		return false
	}
}

// Holds reports whether a reservation in this status still counts against the
// item's reserved quantity.
func (s ReservationStatus) Holds() bool {
	return s == ReservationReserved || s == ReservationConfirmed
}

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationConfirmed || s == ReservationReleased
}
