package reconciliation

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	"github.com/receber-inter/backend/internal/domain/valueobject"
)

// ListEntriesInput represents the input for listing reconciliation entries.
type ListEntriesInput struct {
	// OnlyUnlinked restricts the listing to entries with no invoice link.
	OnlyUnlinked bool
}

// SuggestionOutput is one ranked invoice candidate for an unlinked entry.
type SuggestionOutput struct {
	Invoice           *entity.Invoice
	ClientName        string
	AmountDifference  decimal.Decimal // absolute, in cents precision; zero means exact
	Similarity        float64         // [0.0, 1.0]
	SimilarityPercent int
}

// EntryWithSuggestions pairs a statement entry with its ranked candidates.
// Linked entries carry no suggestions.
type EntryWithSuggestions struct {
	Entry       *entity.StatementEntry
	Suggestions []SuggestionOutput
}

// ListEntriesOutput represents the operator-facing reconciliation listing.
type ListEntriesOutput struct {
	Entries []EntryWithSuggestions
}

// ListEntriesUseCase produces the reconciliation review listing: every entry
// with up to MaxSuggestionsPerEntry ranked invoice candidates.
type ListEntriesUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
	invoiceRepo        adapter.InvoiceRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	invoiceRepo adapter.InvoiceRepository,
) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		reconciliationRepo: reconciliationRepo,
		invoiceRepo:        invoiceRepo,
	}
}

// Execute builds the listing. Candidates are drawn from all open/overdue
// invoices and ranked by ascending amount difference (exact matches always
// first), then descending name similarity, then ascending invoice ID.
// Entries are ordered unlinked first, then by descending best-candidate
// similarity, descending date and descending ID.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.reconciliationRepo.FindEntries(ctx, input.OnlyUnlinked)
	if err != nil {
		return nil, err
	}

	pool, err := uc.invoiceRepo.FindOpenWithClients(ctx)
	if err != nil {
		return nil, err
	}

	// Normalize client names once; similarity compares normalized forms.
	normalizedNames := make([]string, len(pool))
	for i, candidate := range pool {
		normalizedNames[i] = valueobject.NormalizeKey(candidate.ClientName)
	}

	results := make([]EntryWithSuggestions, 0, len(entries))
	bestSimilarity := make(map[uint]float64, len(entries))

	for _, entry := range entries {
		item := EntryWithSuggestions{Entry: entry}

		if !entry.IsLinked() {
			item.Suggestions = rankCandidates(entry, pool, normalizedNames)
			if len(item.Suggestions) > 0 {
				bestSimilarity[entry.ID] = item.Suggestions[0].Similarity
				for _, s := range item.Suggestions {
					if s.Similarity > bestSimilarity[entry.ID] {
						bestSimilarity[entry.ID] = s.Similarity
					}
				}
			}
		}

		results = append(results, item)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		if a.Entry.IsLinked() != b.Entry.IsLinked() {
			return !a.Entry.IsLinked()
		}
		if bestSimilarity[a.Entry.ID] != bestSimilarity[b.Entry.ID] {
			return bestSimilarity[a.Entry.ID] > bestSimilarity[b.Entry.ID]
		}
		if !a.Entry.Date.Equal(b.Entry.Date) {
			return a.Entry.Date.After(b.Entry.Date)
		}
		return a.Entry.ID > b.Entry.ID
	})

	return &ListEntriesOutput{Entries: results}, nil
}

// rankCandidates scores the open-invoice pool against the entry and returns
// the top candidates in ranking order.
func rankCandidates(entry *entity.StatementEntry, pool []adapter.InvoiceWithClient, normalizedNames []string) []SuggestionOutput {
	entryAmount := entry.Amount.Round(2)

	candidates := make([]SuggestionOutput, 0, len(pool))
	for i, candidate := range pool {
		diff := entryAmount.Sub(candidate.Invoice.Amount.Round(2)).Abs()
		sim := valueobject.Similarity(entry.DescriptionKey, normalizedNames[i])

		candidates = append(candidates, SuggestionOutput{
			Invoice:           candidate.Invoice,
			ClientName:        candidate.ClientName,
			AmountDifference:  diff,
			Similarity:        sim,
			SimilarityPercent: valueobject.SimilarityPercent(sim),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if cmp := a.AmountDifference.Cmp(b.AmountDifference); cmp != 0 {
			return cmp < 0
		}
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		return a.Invoice.ID < b.Invoice.ID
	})

	if len(candidates) > MaxSuggestionsPerEntry {
		candidates = candidates[:MaxSuggestionsPerEntry]
	}
	return candidates
}
