package field

// Kind identifies the field kind a descriptor was built for.
type Kind string

const (
	KindString       Kind = "string"
	KindPassword     Kind = "password"
	KindNumber       Kind = "number"
	KindBoolean      Kind = "boolean"
	KindEnum         Kind = "enum"
	KindEmail        Kind = "email"
	KindPhone        Kind = "phone"
	KindUUID         Kind = "uuid"
	KindURL          Kind = "url"
	KindDate         Kind = "date"
	KindTranslations Kind = "translations"
)

func (k Kind) String() string {
	return string(k)
}
