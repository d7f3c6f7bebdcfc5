package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValidator_ValidateInput(t *testing.T) {
	guest := Guest{Name: "Иван Иванов", Email: "ivan@example.com", Phone: "+7 900 000-00-00"}

	tests := []struct {
		name     string
		guest    Guest
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{
			name:     "valid input",
			guest:    guest,
			checkIn:  "2025-03-15",
			checkOut: "2025-03-17",
			wantErr:  nil,
		},
		{
			name:     "missing name",
			guest:    Guest{Email: guest.Email, Phone: guest.Phone},
			checkIn:  "2025-03-15",
			checkOut: "2025-03-17",
			wantErr:  ErrMissingField,
		},
		{
			name:     "missing email",
			guest:    Guest{Name: guest.Name, Phone: guest.Phone},
			checkIn:  "2025-03-15",
			checkOut: "2025-03-17",
			wantErr:  ErrMissingField,
		},
		{
			name:     "missing phone",
			guest:    Guest{Name: guest.Name, Email: guest.Email},
			checkIn:  "2025-03-15",
			checkOut: "2025-03-17",
			wantErr:  ErrMissingField,
		},
		{
			name:     "check-out before check-in",
			guest:    guest,
			checkIn:  "2025-03-17",
			checkOut: "2025-03-15",
			wantErr:  ErrInvalidDateRange,
		},
		{
			name:     "check-out equals check-in",
			guest:    guest,
			checkIn:  "2025-03-15",
			checkOut: "2025-03-15",
			wantErr:  ErrInvalidDateRange,
		},
	}

	v := NewInputValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInput(tt.guest, date(t, tt.checkIn), date(t, tt.checkOut))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
