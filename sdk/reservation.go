package sdk

import (
	"encoding/json"

	"github.com/krancour/courtside/sdk/meta"
)

// ReservationState represents where a reservation is in its approval
// lifecycle.
type ReservationState string

const (
	// ReservationStateAccepted represents a reservation that was approved.
	ReservationStateAccepted ReservationState = "ACCEPTED"
	// ReservationStatePending represents a reservation awaiting a decision.
	ReservationStatePending ReservationState = "PENDING"
	// ReservationStateRejected represents a reservation that was turned down.
	ReservationStateRejected ReservationState = "REJECTED"
)

// Reservation is a court reservation owned by the upstream reservation
// service. courtside only ever reads these.
type Reservation struct {
	ID         string           `json:"id"`
	Email      string           `json:"email"`
	Date       *Timestamp       `json:"date,omitempty"`
	FacilityID string           `json:"facility_id"`
	State      ReservationState `json:"state"`
	CreatedAt  *Timestamp       `json:"createdAt,omitempty"`
	UpdatedAt  *Timestamp       `json:"updatedAt,omitempty"`
	Version    int              `json:"version"`
}

// UnmarshalJSON accepts both the canonical field names and the names the
// upstream service stores records under (_id, cancha_id, __v).
func (r *Reservation) UnmarshalJSON(data []byte) error {
	type Alias Reservation
	aux := struct {
		*Alias
		StoredID         *string `json:"_id"`
		StoredFacilityID *string `json:"cancha_id"`
		StoredVersion    *int    `json:"__v"`
	}{
		Alias: (*Alias)(r),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ID == "" && aux.StoredID != nil {
		r.ID = *aux.StoredID
	}
	if r.FacilityID == "" && aux.StoredFacilityID != nil {
		r.FacilityID = *aux.StoredFacilityID
	}
	if r.Version == 0 && aux.StoredVersion != nil {
		r.Version = *aux.StoredVersion
	}
	return nil
}

// ReservationList is an ordered collection of Reservations.
type ReservationList struct {
	Reservations []Reservation `json:"reservations"`
}

// MarshalJSON amends ReservationList instances with type metadata and
// guarantees the reservations field is never null.
func (r ReservationList) MarshalJSON() ([]byte, error) {
	if r.Reservations == nil {
		r.Reservations = []Reservation{}
	}
	type Alias ReservationList
	return json.Marshal(
		struct {
			meta.TypeMeta `json:",inline"`
			Alias         `json:",inline"`
		}{
			TypeMeta: meta.TypeMeta{
				APIVersion: meta.APIVersion,
				Kind:       "ReservationList",
			},
			Alias: (Alias)(r),
		},
	)
}
