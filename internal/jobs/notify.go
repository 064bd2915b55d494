package jobs

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/solhotel/backoffice/internal/model"
)

// Default message bodies used when no template is configured for an
// event kind or the template lookup fails.
const (
	defaultCheckoutBody   = "Su reserva ha sido finalizada automáticamente. ¡Gracias por su estadía!"
	defaultCompletionBody = "Su servicio contratado ha sido completado. ¡Esperamos que lo haya disfrutado!"
)

// Notifier builds and delivers the system messages emitted by the
// background jobs.  Template lookup and delivery are both best
// effort: every failure path ends in a logged fallback or a logged
// drop, never in an error returned to the engine.
type Notifier struct {
	Config ConfigLookup
	Sink   NotificationSink
	Clock  Clock
}

// NewNotifier wires a notifier from its collaborators.
func NewNotifier(cfg ConfigLookup, sink NotificationSink, clk Clock) *Notifier {
	return &Notifier{Config: cfg, Sink: sink, Clock: clk}
}

// NotifyCheckout sends the auto-checkout message for a finalized
// reservation to its customer.
func (n *Notifier) NotifyCheckout(ctx context.Context, rv model.Reservation, customer model.User) {
	name := displayName(customer)
	body := n.renderOrDefault(ctx, model.SettingAutoCheckoutTemplate, defaultCheckoutBody, map[string]string{
		"reservaId":     strconv.FormatUint(rv.ID, 10),
		"clienteNombre": name,
	})
	resID := rv.ID
	n.deliver(ctx, model.SupportMessage{
		Recipient:     recipient(customer),
		RecipientName: name,
		Body:          body,
		Sender:        model.MessageSenderSystem,
		ReservationID: &resID,
		IsRead:        false,
		IsActive:      true,
		SentAt:        n.Clock.Now(),
	})
}

// NotifyCompletion sends the auto-completion message for a completed
// service contract to its customer.  serviceName may be empty when
// the service lookup failed; the token is then left unresolved.
func (n *Notifier) NotifyCompletion(ctx context.Context, c model.ServiceContract, serviceName string, customer model.User) {
	name := displayName(customer)
	subs := map[string]string{
		"clienteNombre": name,
		"fechaServicio": c.ScheduledAt.UTC().Format(time.RFC3339),
	}
	if serviceName != "" {
		subs["servicioNombre"] = serviceName
	}
	body := n.renderOrDefault(ctx, model.SettingServiceCompletedTemplate, defaultCompletionBody, subs)
	n.deliver(ctx, model.SupportMessage{
		Recipient:     recipient(customer),
		RecipientName: name,
		Body:          body,
		Sender:        model.MessageSenderSystem,
		ReservationID: c.ReservationID,
		IsRead:        false,
		IsActive:      true,
		SentAt:        n.Clock.Now(),
	})
}

// renderOrDefault looks up the template stored under key and renders
// it with the substitution map.  A missing key, an empty value or a
// lookup error all fall back to the fixed default body.
func (n *Notifier) renderOrDefault(ctx context.Context, key, def string, subs map[string]string) string {
	tpl, found, err := n.Config.FindByKey(ctx, key)
	if err != nil {
		log.Printf("notifier: template lookup %s failed, using default: %v", key, err)
		return def
	}
	if !found || strings.TrimSpace(tpl) == "" {
		return def
	}
	return renderTemplate(tpl, subs)
}

// deliver hands the message to the sink.  Sink failures are logged
// and swallowed so a broken mailbox never blocks a status transition.
func (n *Notifier) deliver(ctx context.Context, msg model.SupportMessage) {
	if err := n.Sink.Send(ctx, msg); err != nil {
		log.Printf("notifier: send to %s failed: %v", msg.Recipient, err)
	}
}

// renderTemplate substitutes every {token} present in subs.  Tokens
// not present in the map are left verbatim so a misconfigured
// template stays visible instead of silently losing text.
func renderTemplate(tpl string, subs map[string]string) string {
	out := tpl
	for token, value := range subs {
		out = strings.ReplaceAll(out, "{"+token+"}", value)
	}
	return out
}

// recipient returns the customer's external identity, or "unknown"
// when the account has no email.
func recipient(u model.User) string {
	if strings.TrimSpace(u.Email) == "" {
		return "unknown"
	}
	return u.Email
}

// displayName builds the inbox display name: trimmed "first last"
// with the first name defaulting to "Cliente" and the last name to
// the empty string.
func displayName(u model.User) string {
	first := "Cliente"
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) != "" {
		first = strings.TrimSpace(*u.FirstName)
	}
	last := ""
	if u.LastName != nil {
		last = strings.TrimSpace(*u.LastName)
	}
	return strings.TrimSpace(first + " " + last)
}
