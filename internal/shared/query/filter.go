package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage = 1
	PageKey     = "page"
)

// NormalizePage maps anything below 1 to the default page.
func NormalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// Builder serializes a sparse set of list options. Unset values are omitted.
type Builder struct {
	values url.Values
}

func NewBuilder(page int) *Builder {
	b := &Builder{values: url.Values{}}
	b.values.Set(PageKey, strconv.Itoa(NormalizePage(page)))
	return b
}

// String adds the value as-is; an empty string counts as unset.
func (b *Builder) String(key, value string) *Builder {
	if value != "" {
		b.values.Set(key, value)
	}
	return b
}

func (b *Builder) StringPtr(key string, value *string) *Builder {
	if value != nil {
		b.String(key, *value)
	}
	return b
}

func (b *Builder) IntPtr(key string, value *int) *Builder {
	if value != nil {
		b.values.Set(key, strconv.Itoa(*value))
	}
	return b
}

// BoolPtr renders booleans lower-case.
func (b *Builder) BoolPtr(key string, value *bool) *Builder {
	if value != nil {
		b.values.Set(key, strconv.FormatBool(*value))
	}
	return b
}

func (b *Builder) Values() url.Values {
	out := make(url.Values, len(b.values))
	for k, v := range b.values {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (b *Builder) Encode() string {
	return b.values.Encode()
}
