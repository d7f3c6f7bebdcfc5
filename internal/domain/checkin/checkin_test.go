package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		wantErr bool
	}{
		{name: "complete form", form: Form{DocumentNumber: "1234 567890", RulesAccepted: true}},
		{name: "missing document", form: Form{RulesAccepted: true}, wantErr: true},
		{name: "rules not accepted", form: Form{DocumentNumber: "1234 567890"}, wantErr: true},
		{name: "empty form", form: Form{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Confirm(tt.form)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIncomplete)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, msg, "Регистрация завершена")
		})
	}
}
