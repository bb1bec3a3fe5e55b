package model

// Snapshot is the locally cached copy of the server-owned user state. The
// server is the source of truth: after every successful mutation the
// response's amount, categories, transactions, wallet and notification
// replace the cached values wholesale.
type Snapshot struct {
	UserID       ID            `json:"user_id"`
	UserName     string        `json:"user_name"`
	UserEmail    string        `json:"user_email"`
	Amount       int64         `json:"amount"`
	Wallet       int64         `json:"wallet"`
	Note         string        `json:"note"`
	Notification string        `json:"notification"`
	Categories   []Category    `json:"categories"`
	Transactions []Transaction `json:"transactions"`
}

// CategoryByID resolves a category reference. The boolean is false when
// the id is unknown; callers render UnknownCategory in that case.
func (s *Snapshot) CategoryByID(id ID) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return UnknownCategory, false
}

// TransactionByID looks up a cached transaction.
func (s *Snapshot) TransactionByID(id ID) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// RemoveTransaction filters a transaction out of the cached list. Deletion
// is a soft status flip server-side; the client only drops its local copy.
func (s *Snapshot) RemoveTransaction(id ID) {
	kept := s.Transactions[:0]
	for _, t := range s.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.Transactions = kept
}

// CategoriesByType returns the categories shown on one tab.
func (s *Snapshot) CategoriesByType(categoryType string) []Category {
	var out []Category
	for _, c := range s.Categories {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out
}
