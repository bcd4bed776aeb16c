package field

// Ptr returns a pointer to v. Bounds are pointers so that zero is a real bound.
func Ptr[T any](v T) *T {
	return &v
}

// StringOptions configures String.
type StringOptions struct {
	MinLength   *int
	MaxLength   *int
	ToLowerCase bool
	ToUpperCase bool
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

// PasswordOptions configures Password. Pattern replaces the default
// character-class pattern when set.
type PasswordOptions struct {
	MinLength   *int
	MaxLength   *int
	Pattern     string
	Description string
	SkipSchema  bool
}

// NumberOptions configures Number.
type NumberOptions struct {
	Minimum     *float64
	Maximum     *float64
	Int         bool
	Positive    bool
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

type BooleanOptions struct {
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

// EnumOptions configures Enum. Name is published as the enum's schema name.
type EnumOptions struct {
	Name        string
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

type EmailOptions struct {
	MinLength   *int
	MaxLength   *int
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

// PhoneOptions configures Phone. Region is a CLDR region code ("US", "GB")
// used for numbers written without a country code; empty accepts
// international numbers only.
type PhoneOptions struct {
	Region      string
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

// UUIDOptions configures UUID. With Each the field also requires a non-empty array.
type UUIDOptions struct {
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

type URLOptions struct {
	MinLength   *int
	MaxLength   *int
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

type DateOptions struct {
	Each        bool
	Description string
	Example     any
	SkipSchema  bool
}

// TranslationOptions configures TranslationSet. Languages is the number of
// supported languages; every set must contain exactly that many elements.
type TranslationOptions struct {
	Languages   int
	Description string
	SkipSchema  bool
}
