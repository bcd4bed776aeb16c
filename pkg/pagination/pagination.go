package pagination

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// Order is the sort direction of a listing.
type Order string

const (
	OrderASC  Order = "ASC"
	OrderDESC Order = "DESC"
)

// Orders lists the accepted sort directions.
func Orders() []Order {
	return []Order{OrderASC, OrderDESC}
}

const (
	DefaultPage = 1
	DefaultTake = 10
	MaxTake     = 50
	MaxPage     = math.MaxInt32
)

// OptionsSchema validates listing query parameters. Every field is optional;
// defaults are applied by ParseOptions.
var OptionsSchema = field.NewSchema("PageOptionsDto",
	field.Named("order", field.EnumOptional(Orders, field.EnumOptions{Name: "Order", Example: OrderASC})),
	field.Named("page", field.NumberOptional(field.NumberOptions{Minimum: field.Ptr(1.0), Maximum: field.Ptr(float64(MaxPage)), Int: true})),
	field.Named("take", field.NumberOptional(field.NumberOptions{Minimum: field.Ptr(1.0), Maximum: field.Ptr(float64(MaxTake)), Int: true})),
	field.Named("q", field.StringOptional(field.StringOptions{})),
)

// MetaSchema publishes the shape of Meta.
var MetaSchema = field.NewSchema("PageMetaDto",
	field.Named("page", field.Number(field.NumberOptions{Int: true})),
	field.Named("take", field.Number(field.NumberOptions{Int: true})),
	field.Named("itemCount", field.Number(field.NumberOptions{Int: true})),
	field.Named("pageCount", field.Number(field.NumberOptions{Int: true})),
	field.Named("hasPreviousPage", field.Boolean(field.BooleanOptions{})),
	field.Named("hasNextPage", field.Boolean(field.BooleanOptions{})),
)

// Options are validated listing parameters.
type Options struct {
	Order Order
	Page  int
	Take  int
	Q     string
}

// Skip is the number of items before the requested page.
func (o Options) Skip() int {
	return (o.Page - 1) * o.Take
}

// ParseOptions validates a presence map (typically from binder.Query) and
// fills in defaults for absent parameters.
func ParseOptions(values map[string]any) (Options, error) {
	out, err := OptionsSchema.Validate(values)
	if err != nil {
		return Options{}, err
	}

	opts := Options{Order: OrderASC, Page: DefaultPage, Take: DefaultTake}
	if v, ok := out["order"]; ok {
		opts.Order = Order(fmt.Sprint(v))
	}
	if v, ok := out["page"].(float64); ok {
		opts.Page = int(v)
	}
	if v, ok := out["take"].(float64); ok {
		opts.Take = int(v)
	}
	if v, ok := out["q"].(string); ok {
		opts.Q = v
	}
	return opts, nil
}

// Meta describes a page of results.
type Meta struct {
	Page            int  `json:"page"`
	Take            int  `json:"take"`
	ItemCount       int  `json:"itemCount"`
	PageCount       int  `json:"pageCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// NewMeta computes page metadata for itemCount total items.
func NewMeta(opts Options, itemCount int) Meta {
	pageCount := 0
	if opts.Take > 0 {
		pageCount = int(math.Ceil(float64(itemCount) / float64(opts.Take)))
	}
	return Meta{
		Page:            opts.Page,
		Take:            opts.Take,
		ItemCount:       itemCount,
		PageCount:       pageCount,
		HasPreviousPage: opts.Page > 1,
		HasNextPage:     opts.Page < pageCount,
	}
}

// Page is a listing response.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func NewPage[T any](data []T, opts Options, itemCount int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Meta: NewMeta(opts, itemCount)}
}
