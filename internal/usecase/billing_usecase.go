package usecase

import (
	"context"
	"sort"

	"salle_attente/internal/domain/catalog"
	"salle_attente/internal/domain/entities"
	"salle_attente/internal/usecase/interfaces"
)

// NoServiceName is the sentinel returned by the "most used"/"most profitable"
// queries when a day has no billed services.
const NoServiceName = "Aucun"

// ServiceHighlight is the answer to a "most ..." query over one day.
type ServiceHighlight struct {
	Name    string
	Count   int
	Revenue float64
}

// BillingSummary is the billing tab's stats row for one date.
type BillingSummary struct {
	Date           string
	TotalRevenue   float64
	MostUsed       ServiceHighlight
	MostProfitable ServiceHighlight
}

// IBillingUseCase exposes the per-date revenue ledger.
//
// The ledger is purely derived: rebuilt from scratch from the completion log
// on every read, which keeps the rebuild trivially idempotent.
type IBillingUseCase interface {
	Ledger(ctx context.Context, date string) (entities.LedgerEntry, error)
	AvailableDates(ctx context.Context) ([]string, error)
	Summary(ctx context.Context, date string) (BillingSummary, error)
}

type BillingUseCase struct {
	completions interfaces.ICompletionRepository
	catalog     *catalog.Catalog
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(completions interfaces.ICompletionRepository, cat *catalog.Catalog) *BillingUseCase {
	return &BillingUseCase{completions: completions, catalog: cat}
}

// Ledger returns the aggregated entry for one date. A date with no
// completions yields an empty entry with every catalog service at zero.
func (u *BillingUseCase) Ledger(ctx context.Context, date string) (entities.LedgerEntry, error) {
	records, err := u.completions.List(ctx)
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	ledgers := buildLedgers(records, u.catalog)
	if entry, ok := ledgers[date]; ok {
		return entry, nil
	}
	return emptyLedgerEntry(date, u.catalog), nil
}

// AvailableDates returns every date with at least one completion, newest
// first. Lexicographic descending order on "YYYY-MM-DD" is chronological.
func (u *BillingUseCase) AvailableDates(ctx context.Context) ([]string, error) {
	records, err := u.completions.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var dates []string
	for _, r := range records {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

// Summary bundles the revenue total and both "most ..." queries for one date.
func (u *BillingUseCase) Summary(ctx context.Context, date string) (BillingSummary, error) {
	entry, err := u.Ledger(ctx, date)
	if err != nil {
		return BillingSummary{}, err
	}
	return BillingSummary{
		Date:           date,
		TotalRevenue:   entry.TotalRevenue,
		MostUsed:       u.MostUsedService(entry),
		MostProfitable: u.MostProfitableService(entry),
	}, nil
}

// MostUsedService returns the service with the highest count for the entry.
// Ties go to the first service in catalog order; an all-zero day yields the
// "Aucun" sentinel.
func (u *BillingUseCase) MostUsedService(entry entities.LedgerEntry) ServiceHighlight {
	best := ServiceHighlight{Name: NoServiceName}
	for _, s := range u.catalog.Services() {
		tally, ok := entry.PerService[s.ID]
		if !ok {
			continue
		}
		if tally.Count > best.Count {
			best = ServiceHighlight{Name: tally.Name, Count: tally.Count, Revenue: tally.Revenue}
		}
	}
	return best
}

// MostProfitableService is MostUsedService keyed by revenue instead of count.
func (u *BillingUseCase) MostProfitableService(entry entities.LedgerEntry) ServiceHighlight {
	best := ServiceHighlight{Name: NoServiceName}
	for _, s := range u.catalog.Services() {
		tally, ok := entry.PerService[s.ID]
		if !ok {
			continue
		}
		if tally.Revenue > best.Revenue {
			best = ServiceHighlight{Name: tally.Name, Count: tally.Count, Revenue: tally.Revenue}
		}
	}
	return best
}

// buildLedgers groups completion records by date and accumulates revenue and
// per-service tallies.
func buildLedgers(records []entities.CompletionRecord, cat *catalog.Catalog) map[string]entities.LedgerEntry {
	ledgers := make(map[string]entities.LedgerEntry)
	for _, r := range records {
		entry, ok := ledgers[r.Date]
		if !ok {
			entry = emptyLedgerEntry(r.Date, cat)
		}
		entry.Patients = append(entry.Patients, r)
		for _, s := range r.Services {
			entry.TotalRevenue += s.Price
			tally := entry.PerService[s.ID]
			tally.Name = s.Name
			tally.Count++
			tally.Revenue += s.Price
			entry.PerService[s.ID] = tally
		}
		ledgers[r.Date] = entry
	}
	return ledgers
}

func emptyLedgerEntry(date string, cat *catalog.Catalog) entities.LedgerEntry {
	perService := make(map[int]entities.ServiceTally)
	for _, s := range cat.Services() {
		perService[s.ID] = entities.ServiceTally{Name: s.Name}
	}
	return entities.LedgerEntry{
		Date:       date,
		Patients:   []entities.CompletionRecord{},
		PerService: perService,
	}
}
