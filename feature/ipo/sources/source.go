package sources

import (
	"context"
	"time"

	"ipo-tracker/feature/ipo/models"
)

// Source is one upstream market-data feed.
type Source interface {
	// Name returns the unique source name, e.g. "finnhub".
	Name() string

	// Market returns the market every record of this source belongs to.
	Market() models.Market

	// Fetch retrieves the current native records. Any transport failure or non-2xx
	// response fails the whole call with a *SourceError.
	Fetch(ctx context.Context) (*Batch, error)
}

// Record is one native upstream record.
type Record interface {
	// Label identifies the record in error messages. It is the raw symbol, or empty.
	Label() string

	// Skip reports whether the source pre-filter drops this record, and why.
	Skip() (bool, string)

	// Transform maps the record to the canonical shape. now anchors status inference.
	Transform(now time.Time) (models.CanonicalStockRecord, error)
}

// Batch is the decoded result of one fetch.
type Batch struct {
	Records []Record
	// Raw is the upstream body. Paginated sources join their pages into a JSON array.
	Raw []byte
}
