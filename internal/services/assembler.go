package services

import (
	"encoding/json"
	"time"

	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/logger"
)

// maxDigestContentLen truncates free text before it enters a prompt, keeping
// the assembled context size predictable.
const maxDigestContentLen = 240

// Recipe selects which collections to sample and how many rows each may
// contribute.
type Recipe struct {
	Tasks        int
	Journal      int
	Transactions int
	Habits       int
	Files        int
}

func DefaultRecipe() Recipe {
	return Recipe{Tasks: 10, Journal: 5, Transactions: 10, Habits: 10, Files: 10}
}

type TaskDigest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type EntryDigest struct {
	Mood    string `json:"mood"`
	Content string `json:"content"`
}

type TransactionDigest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type HabitDigest struct {
	Title           string     `json:"title"`
	Streak          int        `json:"streak"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

type FileDigest struct {
	Name string `json:"name"`
	Kind string `json:"type"`
}

// Snapshot is the structured context handed to the completion bridge.
// Collections that failed to load are present but empty.
type Snapshot struct {
	Tasks        []TaskDigest        `json:"tasks"`
	Journal      []EntryDigest       `json:"journal"`
	Transactions []TransactionDigest `json:"transactions"`
	Habits       []HabitDigest       `json:"habits"`
	Files        []FileDigest        `json:"files"`
}

func (s Snapshot) Empty() bool {
	return len(s.Tasks) == 0 && len(s.Journal) == 0 && len(s.Transactions) == 0 &&
		len(s.Habits) == 0 && len(s.Files) == 0
}

// JSON renders the snapshot compactly for prompt inclusion.
func (s Snapshot) JSON() string {
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Assemble samples a bounded snapshot of the owner's records. A failing
// sub-query degrades its collection to empty and the rest still populate;
// assembly itself never fails.
func Assemble(scope *store.Scope, recipe Recipe) Snapshot {
	snapshot := Snapshot{
		Tasks:        []TaskDigest{},
		Journal:      []EntryDigest{},
		Transactions: []TransactionDigest{},
		Habits:       []HabitDigest{},
		Files:        []FileDigest{},
	}

	if recipe.Tasks > 0 {
		if tasks, err := scope.RecentTasks(recipe.Tasks); err != nil {
			warnDegraded(scope, "tasks", err)
		} else {
			for _, t := range tasks {
				snapshot.Tasks = append(snapshot.Tasks, TaskDigest{Title: t.Title, Status: string(t.Status)})
			}
		}
	}

	if recipe.Journal > 0 {
		if entries, err := scope.RecentEntries(recipe.Journal); err != nil {
			warnDegraded(scope, "journal", err)
		} else {
			for _, e := range entries {
				snapshot.Journal = append(snapshot.Journal, EntryDigest{Mood: e.Mood, Content: truncate(e.Content)})
			}
		}
	}

	if recipe.Transactions > 0 {
		if txns, err := scope.RecentTransactions(recipe.Transactions); err != nil {
			warnDegraded(scope, "transactions", err)
		} else {
			for _, txn := range txns {
				snapshot.Transactions = append(snapshot.Transactions, TransactionDigest{
					Description: txn.Description,
					Amount:      txn.Amount,
					Type:        string(txn.Type),
				})
			}
		}
	}

	if recipe.Habits > 0 {
		if habits, err := scope.TopHabits(recipe.Habits); err != nil {
			warnDegraded(scope, "habits", err)
		} else {
			for _, h := range habits {
				snapshot.Habits = append(snapshot.Habits, HabitDigest{
					Title:           h.Title,
					Streak:          h.Streak,
					LastCompletedAt: h.LastCompletedAt,
				})
			}
		}
	}

	if recipe.Files > 0 {
		if nodes, err := scope.SampleFileNodes(recipe.Files); err != nil {
			warnDegraded(scope, "files", err)
		} else {
			for _, n := range nodes {
				snapshot.Files = append(snapshot.Files, FileDigest{Name: n.Name, Kind: string(n.Kind)})
			}
		}
	}

	return snapshot
}

func warnDegraded(scope *store.Scope, collection string, err error) {
	logger.WarnWithUser(scope.Owner().String(), "context_collection_degraded", map[string]interface{}{
		"collection": collection,
		"error":      err.Error(),
	})
}

func truncate(text string) string {
	if len(text) <= maxDigestContentLen {
		return text
	}
	return text[:maxDigestContentLen] + "..."
}
