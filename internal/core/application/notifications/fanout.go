package notifications

import (
	"context"
	"sync"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/ports"
	"mealflow/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentTargets bounds the parallel customer, chef and admin sends.
const maxConcurrentTargets = 3

// Report summarizes one fan-out.
type Report struct {
	TotalNotificationsSent int
	Skipped                []ports.RecipientRole
	Errors                 []error
}

// Fanout sends an event to each target independently. A failing target is
// recorded in the report and does not stop the others.
type Fanout struct {
	directory ports.RecipientDirectory
	transport ports.PushTransport
}

func NewFanout(directory ports.RecipientDirectory, transport ports.PushTransport) *Fanout {
	return &Fanout{directory: directory, transport: transport}
}

func (f *Fanout) Dispatch(ctx context.Context, event Event) Report {
	var (
		mu     sync.Mutex
		report Report
		g      errgroup.Group
	)
	g.SetLimit(maxConcurrentTargets)

	record := func(role ports.RecipientRole, sent int, failures []error, skipped bool) {
		mu.Lock()
		defer mu.Unlock()
		report.TotalNotificationsSent += sent
		report.Errors = append(report.Errors, failures...)
		if skipped {
			report.Skipped = append(report.Skipped, role)
		}
	}

	targets := []struct {
		role    ports.RecipientRole
		resolve func(context.Context) ([]string, error)
	}{
		{ports.RoleCustomer, f.userTokens(ports.RoleCustomer, event.CustomerID)},
		{ports.RoleChef, f.userTokens(ports.RoleChef, event.ChefID)},
		{ports.RoleAdmin, f.adminTokens(event.NotifyAdmin)},
	}

	for _, target := range targets {
		g.Go(func() error {
			sent, failures, skipped := f.sendTo(ctx, target.role, target.resolve, event)
			record(target.role, sent, failures, skipped)
			return nil
		})
	}
	_ = g.Wait()

	return report
}

func (f *Fanout) sendTo(
	ctx context.Context,
	role ports.RecipientRole,
	resolve func(context.Context) ([]string, error),
	event Event,
) (int, []error, bool) {
	if resolve == nil {
		return 0, nil, true
	}

	tokens, err := resolve(ctx)
	if err != nil {
		return 0, []error{errs.NewNotificationDeliveryError(string(role), err)}, false
	}
	if len(tokens) == 0 {
		return 0, nil, true
	}

	var (
		sent     int
		failures []error
	)
	for _, token := range tokens {
		msg := ports.PushMessage{
			RecipientToken: token,
			Title:          event.Title,
			Body:           event.Body,
			Data:           withKind(event),
		}
		if err = f.transport.Send(ctx, role, msg); err != nil {
			failures = append(failures, errs.NewNotificationDeliveryError(string(role), err))
			continue
		}
		sent++
	}
	return sent, failures, false
}

func (f *Fanout) userTokens(role ports.RecipientRole, userID *kernel.UUID) func(context.Context) ([]string, error) {
	if userID == nil {
		return nil
	}
	id := *userID
	return func(ctx context.Context) ([]string, error) {
		return f.directory.TokensFor(ctx, role, id)
	}
}

func (f *Fanout) adminTokens(notify bool) func(context.Context) ([]string, error) {
	if !notify {
		return nil
	}
	return f.directory.AdminTokens
}

func withKind(event Event) map[string]string {
	data := make(map[string]string, len(event.Data)+1)
	for k, v := range event.Data {
		data[k] = v
	}
	data["kind"] = string(event.Kind)
	return data
}
