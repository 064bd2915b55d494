package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		subs map[string]string
		want string
	}{
		{
			name: "single token",
			tpl:  "Booking #{reservaId} done",
			subs: map[string]string{"reservaId": "42"},
			want: "Booking #42 done",
		},
		{
			name: "multiple tokens",
			tpl:  "Hola {clienteNombre}, reserva {reservaId}",
			subs: map[string]string{"clienteNombre": "Ana Pérez", "reservaId": "7"},
			want: "Hola Ana Pérez, reserva 7",
		},
		{
			name: "unresolved token left verbatim",
			tpl:  "Reserva {reservaId} el {fechaServicio}",
			subs: map[string]string{"reservaId": "7"},
			want: "Reserva 7 el {fechaServicio}",
		},
		{
			name: "no tokens",
			tpl:  "plain text",
			subs: map[string]string{"reservaId": "7"},
			want: "plain text",
		},
		{
			name: "repeated token",
			tpl:  "{reservaId}-{reservaId}",
			subs: map[string]string{"reservaId": "9"},
			want: "9-9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderTemplate(tt.tpl, tt.subs); got != tt.want {
				t.Errorf("renderTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotifyCheckoutTemplateAndFallback(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rv := model.Reservation{ID: 42, CustomerID: 1}
	customer := model.User{ID: 1, Email: "ana@example.com", FirstName: strptr("Ana"), LastName: strptr("Pérez")}

	tests := []struct {
		name     string
		cfg      *fakeConfig
		wantBody string
	}{
		{
			name:     "configured template is rendered",
			cfg:      &fakeConfig{values: map[string]string{model.SettingAutoCheckoutTemplate: "Booking #{reservaId} done"}},
			wantBody: "Booking #42 done",
		},
		{
			name:     "missing template falls back to default",
			cfg:      &fakeConfig{},
			wantBody: defaultCheckoutBody,
		},
		{
			name:     "blank template falls back to default",
			cfg:      &fakeConfig{values: map[string]string{model.SettingAutoCheckoutTemplate: "   "}},
			wantBody: defaultCheckoutBody,
		},
		{
			name:     "lookup error falls back to default",
			cfg:      &fakeConfig{err: errors.New("settings table missing")},
			wantBody: defaultCheckoutBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			n := NewNotifier(tt.cfg, sink, fakeClock{t: now})
			n.NotifyCheckout(context.Background(), rv, customer)

			if len(sink.sent) != 1 {
				t.Fatalf("sent %d messages, want 1", len(sink.sent))
			}
			msg := sink.sent[0]
			if msg.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", msg.Body, tt.wantBody)
			}
			if msg.RecipientName != "Ana Pérez" {
				t.Errorf("recipient name = %q, want %q", msg.RecipientName, "Ana Pérez")
			}
			if msg.IsRead || !msg.IsActive {
				t.Errorf("flags = read:%v active:%v, want read:false active:true", msg.IsRead, msg.IsActive)
			}
			if !msg.SentAt.Equal(now) {
				t.Errorf("sent_at = %v, want %v", msg.SentAt, now)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want string
	}{
		{"both names", model.User{FirstName: strptr("Ana"), LastName: strptr("Pérez")}, "Ana Pérez"},
		{"missing first defaults to Cliente", model.User{LastName: strptr("Pérez")}, "Cliente Pérez"},
		{"missing last", model.User{FirstName: strptr("Ana")}, "Ana"},
		{"missing both", model.User{}, "Cliente"},
		{"whitespace only first", model.User{FirstName: strptr("  ")}, "Cliente"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.user); got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecipientFallsBackToUnknown(t *testing.T) {
	if got := recipient(model.User{Email: "a@b.c"}); got != "a@b.c" {
		t.Errorf("recipient() = %q, want a@b.c", got)
	}
	if got := recipient(model.User{}); got != "unknown" {
		t.Errorf("recipient() = %q, want unknown", got)
	}
}
