package onoffice

// Estate field identifiers as named by the onOffice API.
const (
	FieldID        = "Id"
	FieldPrice     = "kaufpreis"
	FieldLocation  = "lage"
	FieldStatus    = "status"
	defaultLimit   = 100
	activeLimit    = 10
	activeMaxPrice = 300000
)

// estateFields is the field set requested by every query shape.
var estateFields = []string{FieldID, FieldPrice, FieldLocation}

// Predicate is a single filter condition on a field.
type Predicate struct {
	Op  string `json:"op"`
	Val any    `json:"val"`
}

// Filter maps a field to its predicates. Predicates on the same field are ANDed.
type Filter map[string][]Predicate

// QuerySpec is the parameters object of a read action.
type QuerySpec struct {
	Data       []string `json:"data"`
	Filter     Filter   `json:"filter,omitempty"`
	ListLimit  int      `json:"listlimit"`
	ListOffset int      `json:"listoffset"`
}

// DefaultActiveListings returns the query for up to ten active estates
// priced below 300000.
func DefaultActiveListings() QuerySpec {
	return QuerySpec{
		Data: fields(),
		Filter: Filter{
			FieldStatus: {{Op: "=", Val: 1}},
			FieldPrice:  {{Op: "<", Val: activeMaxPrice}},
		},
		ListLimit:  activeLimit,
		ListOffset: 0,
	}
}

// AllListings returns an unfiltered query for the first hundred estates.
func AllListings() QuerySpec {
	return QuerySpec{
		Data:       fields(),
		ListLimit:  defaultLimit,
		ListOffset: 0,
	}
}

// SearchOption configures a search query.
type SearchOption func(*QuerySpec)

// WithLimit sets listlimit. The value is passed through unchecked.
func WithLimit(n int) SearchOption {
	return func(q *QuerySpec) {
		q.ListLimit = n
	}
}

// WithOffset sets listoffset. The value is passed through unchecked.
func WithOffset(n int) SearchOption {
	return func(q *QuerySpec) {
		q.ListOffset = n
	}
}

// SearchQuery returns a query with the caller's filter. An empty filter
// produces no filter key at all, which the API treats differently from an
// empty filter object. Limit and offset default to 100 and 0.
func SearchQuery(filter Filter, opts ...SearchOption) QuerySpec {
	q := QuerySpec{
		Data:       fields(),
		ListLimit:  defaultLimit,
		ListOffset: 0,
	}
	if len(filter) > 0 {
		q.Filter = filter
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// PriceBelow returns the predicate list for a purchase price ceiling.
func PriceBelow(ceiling int) []Predicate {
	return []Predicate{{Op: "<", Val: ceiling}}
}

// LocationLike returns the predicate list for a partial location match.
func LocationLike(location string) []Predicate {
	return []Predicate{{Op: "LIKE", Val: "%" + location + "%"}}
}

func fields() []string {
	out := make([]string, len(estateFields))
	copy(out, estateFields)
	return out
}
