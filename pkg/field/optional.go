package field

// Optional returns a copy of d that accepts an absent value. An absent value
// skips every step and is left out of the output; a present value goes
// through the same plan as d. The published metadata reports Required=false.
func Optional(d Descriptor) Descriptor {
	d.required = false
	return d
}

func StringOptional(opts StringOptions) Descriptor { return Optional(String(opts)) }

func PasswordOptional(opts PasswordOptions) Descriptor { return Optional(Password(opts)) }

func NumberOptional(opts NumberOptions) Descriptor { return Optional(Number(opts)) }

func BooleanOptional(opts BooleanOptions) Descriptor { return Optional(Boolean(opts)) }

func EnumOptional[T comparable](values func() []T, opts EnumOptions) Descriptor {
	return Optional(Enum(values, opts))
}

func EmailOptional(opts EmailOptions) Descriptor { return Optional(Email(opts)) }

func PhoneOptional(opts PhoneOptions) Descriptor { return Optional(Phone(opts)) }

func UUIDOptional(opts UUIDOptions) Descriptor { return Optional(UUID(opts)) }

func URLOptional(opts URLOptions) Descriptor { return Optional(URL(opts)) }

func DateOptional(opts DateOptions) Descriptor { return Optional(Date(opts)) }

func TranslationSetOptional(elem func() *Schema, opts TranslationOptions) Descriptor {
	return Optional(TranslationSet(elem, opts))
}
