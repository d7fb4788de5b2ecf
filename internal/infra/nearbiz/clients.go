package nearbiz

import (
	"context"

	"github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
)

// appRole is the role id the backend gives accounts created from the app.
const appRole = 4

type registrationPayload struct {
	Name         string  `json:"Nombre"`
	Email        string  `json:"Email"`
	PasswordHash string  `json:"ContrasenaHash"`
	RoleID       int     `json:"IdRol"`
	Token        *string `json:"Token"`
}

func (c *Client) ListClients(ctx context.Context) ([]appointment.Client, error) {
	recs, err := c.getRecords(ctx, "/clientes", nil)
	if err != nil {
		return nil, err
	}

	out := make([]appointment.Client, 0, len(recs))
	for _, r := range recs {
		id, ok := r.int("idcliente", "id")
		if !ok {
			continue
		}
		out = append(out, appointment.Client{
			ID:    id,
			Name:  r.str("nombre", "name"),
			Email: r.str("email", "correo", "correoelectronico"),
			Phone: r.str("telefono", "phone"),
		})
	}
	return out, nil
}

// RegisterAppUser mirrors a new app account to the backend's user table.
func (c *Client) RegisterAppUser(ctx context.Context, name, email, passwordHash string) error {
	_, err := c.postJSON(ctx, c.baseURL+"/registroapp", registrationPayload{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       appRole,
	})
	return err
}
