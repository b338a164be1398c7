package realrate

// Row is a raw transaction row of an account history, as read from the
// source file. All fields are kept verbatim.
type Row struct {
	Line        int    `json:"line"` // 1-based line in the source file.
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Code        string `json:"code,omitempty"` // investment code when the source has a dedicated column.
}

// NewEvents classifies rows into events.
//
// The first malformed row aborts the conversion with a *ParseError: no partial
// result is returned.
func NewEvents(rows []Row, currency string) ([]Event, error) {
	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		e, err := NewEvent(row, currency)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
