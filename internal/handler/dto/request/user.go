package request

import (
	"encoding/json"

	"travelmate/internal/domain/user"
	"travelmate/internal/pkg/errs"
	"travelmate/internal/usecase/commands"
)

type PreferencesRequest struct {
	Budget        string         `json:"budget"`
	Style         []string       `json:"style"`
	Destinations  []string       `json:"destinations"`
	Accommodation string         `json:"accommodation"`
	Alerts        []string       `json:"alerts"`
	Extra         map[string]any `json:"-"`
}

// UnmarshalJSON reads the travel style from either "travelStyle" (the web
// client) or "style" (stored sample data), "travelStyle" winning when both
// are sent. Unmodeled keys land in Extra instead of failing the request.
func (r *PreferencesRequest) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	known := []struct {
		key string
		dst any
	}{
		{"budget", &r.Budget},
		{"style", &r.Style},
		{"travelStyle", &r.Style},
		{"destinations", &r.Destinations},
		{"accommodation", &r.Accommodation},
		{"alerts", &r.Alerts},
	}
	for _, k := range known {
		v, ok := raw[k.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, k.dst); err != nil {
			return errs.Wrapf(err, "preferences.%s", k.key)
		}
		delete(raw, k.key)
	}

	for key, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return errs.Wrapf(err, "preferences.%s", key)
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any, len(raw))
		}
		r.Extra[key] = val
	}
	return nil
}

func (r *PreferencesRequest) ToDomain() *user.Preferences {
	if r == nil {
		return nil
	}
	return &user.Preferences{
		Budget:        r.Budget,
		Style:         r.Style,
		Destinations:  r.Destinations,
		Accommodation: r.Accommodation,
		Alerts:        r.Alerts,
		Extra:         r.Extra,
	}
}

type CreateUserRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Preferences *PreferencesRequest `json:"preferences"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Name:        r.Name,
		Email:       r.Email,
		Preferences: r.Preferences.ToDomain(),
	}
}

type UpdatePreferencesRequest struct {
	Preferences *PreferencesRequest `json:"preferences" binding:"required"`
}
