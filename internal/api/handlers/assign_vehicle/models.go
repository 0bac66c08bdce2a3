package assign_vehicle

import "github.com/google/uuid"

// AssignVehicleRequest HTTP request model. null снимает закрепление.
type AssignVehicleRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}
