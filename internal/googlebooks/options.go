package googlebooks

import "fmt"

// Filter ограничивает выдачу по типу и доступности томов.
type Filter string

const (
	FilterPartial    Filter = "partial"
	FilterFull       Filter = "full"
	FilterFreeEbooks Filter = "free-ebooks"
	FilterPaidEbooks Filter = "paid-ebooks"
	FilterEbooks     Filter = "ebooks"
)

func (f Filter) Validate() error {
	switch f {
	case FilterPartial, FilterFull, FilterFreeEbooks, FilterPaidEbooks, FilterEbooks:
		return nil
	}
	return fmt.Errorf("%w: filter %q", ErrInvalidOption, string(f))
}

// PrintType ограничивает выдачу по типу издания.
type PrintType string

const (
	PrintTypeAll       PrintType = "all"
	PrintTypeBooks     PrintType = "books"
	PrintTypeMagazines PrintType = "magazines"
)

func (p PrintType) Validate() error {
	switch p {
	case PrintTypeAll, PrintTypeBooks, PrintTypeMagazines:
		return nil
	}
	return fmt.Errorf("%w: printType %q", ErrInvalidOption, string(p))
}

type OrderBy string

const (
	OrderByRelevance OrderBy = "relevance"
	OrderByNewest    OrderBy = "newest"
)

func (o OrderBy) Validate() error {
	switch o {
	case OrderByRelevance, OrderByNewest:
		return nil
	}
	return fmt.Errorf("%w: orderBy %q", ErrInvalidOption, string(o))
}

type Projection string

const (
	ProjectionFull Projection = "full"
	ProjectionLite Projection = "lite"
)

func (p Projection) Validate() error {
	switch p {
	case ProjectionFull, ProjectionLite:
		return nil
	}
	return fmt.Errorf("%w: projection %q", ErrInvalidOption, string(p))
}
