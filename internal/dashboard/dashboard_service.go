package dashboard

import (
	"context"

	"go-smbops/internal/contact"
	"go-smbops/internal/quote"
	"go-smbops/internal/shared/contextutil"
	"go-smbops/internal/task"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentLimit = 5

type ContactReader interface {
	Recent(ctx context.Context, n int) ([]contact.Contact, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type QuoteReader interface {
	RecentOwned(ctx context.Context, ownerID string, n int) ([]quote.Quote, error)
	CountOwned(ctx context.Context, ownerID string) (int64, error)
}

type TaskReader interface {
	Recent(ctx context.Context, n int) ([]task.Task, error)
	CountByStatus(ctx context.Context, statuses []string) (int64, error)
}

type Service interface {
	Summary(ctx context.Context, callerID string) (SummaryResponse, error)
}

type service struct {
	contacts ContactReader
	quotes   QuoteReader
	tasks    TaskReader
	logger   *zap.Logger
}

func NewService(contacts ContactReader, quotes QuoteReader, tasks TaskReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{contacts: contacts, quotes: quotes, tasks: tasks, logger: l}
}

// Summary runs the six reads concurrently. They are independent queries, so
// the result is a best-effort snapshot rather than one consistent view.
func (s *service) Summary(ctx context.Context, callerID string) (SummaryResponse, error) {
	var (
		contacts []contact.Contact
		quotes   []quote.Quote
		tasks    []task.Task
		counts   Counts
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		contacts, err = s.contacts.Recent(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		quotes, err = s.quotes.RecentOwned(gctx, callerID, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.tasks.Recent(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		counts.Clients, err = s.contacts.CountByStatus(gctx, contact.StatusClient)
		return err
	})
	g.Go(func() (err error) {
		counts.Quotes, err = s.quotes.CountOwned(gctx, callerID)
		return err
	})
	g.Go(func() (err error) {
		counts.TasksPending, err = s.tasks.CountByStatus(gctx, task.PendingStatuses)
		return err
	})

	if err := g.Wait(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to build dashboard summary", zap.Error(err))
		return SummaryResponse{}, err
	}

	res := SummaryResponse{
		RecentContacts: make([]contact.ContactResponse, 0, len(contacts)),
		RecentQuotes:   make([]quote.QuoteResponse, 0, len(quotes)),
		RecentTasks:    make([]task.TaskResponse, 0, len(tasks)),
		Counts:         counts,
	}
	for i := range contacts {
		res.RecentContacts = append(res.RecentContacts, contact.MapToResponse(&contacts[i]))
	}
	for i := range quotes {
		res.RecentQuotes = append(res.RecentQuotes, quote.MapToResponse(&quotes[i]))
	}
	for i := range tasks {
		res.RecentTasks = append(res.RecentTasks, task.MapToResponse(&tasks[i]))
	}
	return res, nil
}
